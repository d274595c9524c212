package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math"
	"math/rand"
	"net/http"
	"os"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

// recordPayload is the body of POST /accounts/:accountId/records
type recordPayload struct {
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

// accountPayload is the subset of the account body the load test reads back
type accountPayload struct {
	ID                 uint64            `json:"id"`
	Balance            float64           `json:"balance"`
	TransactionRecords []json.RawMessage `json:"transactionRecords"`
}

// TestResult contains metrics for a single request
type TestResult struct {
	Success      bool
	ResponseTime time.Duration
	Signed       float64
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests      int
	SuccessfulRequests int
	FailedRequests     int
	TotalTime          time.Duration
	ResponseTimes      []time.Duration
	ErrorCounts        map[string]int
	ScenarioStats      map[string]int
	ExpectedNet        float64
	Lock               sync.Mutex
}

// RecordScenario defines one kind of ledger entry the workers post
type RecordScenario struct {
	Name   string
	Type   string
	Amount float64
}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 100, "Total number of records to post")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	delayMs := flag.Int("delay", 0, "Delay between requests in milliseconds")
	flag.Parse()

	client := &http.Client{Timeout: 10 * time.Second}

	accountID, err := setupAccount(client, *baseURL)
	if err != nil {
		fmt.Println("Setup failed:", err)
		os.Exit(1)
	}

	scenarios := []RecordScenario{
		{"Deposit Small", "deposit", 10},
		{"Deposit Large", "deposit", 250},
		{"Withdraw Small", "withdrawal", 5},
		{"Withdraw Large", "withdrawal", 120},
	}

	fmt.Printf("Posting %d records to account %d with %d workers\n", *totalRequests, accountID, *concurrency)

	stats := &TestStats{
		TotalRequests: *totalRequests,
		ResponseTimes: make([]time.Duration, 0, *totalRequests),
		ErrorCounts:   make(map[string]int),
		ScenarioStats: make(map[string]int),
	}

	jobs := make(chan int, *totalRequests)
	for i := 0; i < *totalRequests; i++ {
		jobs <- i
	}
	close(jobs)

	startTime := time.Now()
	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(client, *baseURL, accountID, *delayMs, scenarios, jobs, stats)
		}()
	}
	wg.Wait()
	stats.TotalTime = time.Since(startTime)

	printResults(stats)

	if err := verifyAccount(client, *baseURL, accountID, stats); err != nil {
		fmt.Println("❌ CONSISTENCY CHECK FAILED:", err)
		os.Exit(1)
	}
	fmt.Println("✅ Balance and record count match every successful request")
}

// setupAccount creates a fresh owner and an empty account for the run
func setupAccount(client *http.Client, baseURL string) (uint64, error) {
	var user struct {
		ID uint64 `json:"id"`
	}
	username := "load-" + uuid.NewString()[:8]
	if err := postJSON(client, baseURL+"/users", map[string]any{"username": username}, &user); err != nil {
		return 0, fmt.Errorf("create user: %w", err)
	}

	var account accountPayload
	url := fmt.Sprintf("%s/users/%d/accounts", baseURL, user.ID)
	if err := postJSON(client, url, map[string]any{"accountName": "Load test"}, &account); err != nil {
		return 0, fmt.Errorf("create account: %w", err)
	}
	return account.ID, nil
}

func worker(client *http.Client, baseURL string, accountID uint64, delayMs int,
	scenarios []RecordScenario, jobs <-chan int, stats *TestStats) {
	url := fmt.Sprintf("%s/accounts/%d/records", baseURL, accountID)

	for jobID := range jobs {
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}

		scenario := scenarios[rand.Intn(len(scenarios))]
		payload := recordPayload{
			Type:        scenario.Type,
			Amount:      scenario.Amount,
			Description: fmt.Sprintf("load test job %d", jobID),
		}

		start := time.Now()
		err := postJSON(client, url, payload, nil)
		result := TestResult{
			Success:      err == nil,
			ResponseTime: time.Since(start),
			Error:        err,
		}
		if scenario.Type == "withdrawal" {
			result.Signed = -scenario.Amount
		} else {
			result.Signed = scenario.Amount
		}

		stats.Lock.Lock()
		stats.ScenarioStats[scenario.Name]++
		stats.ResponseTimes = append(stats.ResponseTimes, result.ResponseTime)
		if result.Success {
			stats.SuccessfulRequests++
			stats.ExpectedNet += result.Signed
		} else {
			stats.FailedRequests++
			stats.ErrorCounts[result.Error.Error()]++
		}
		stats.Lock.Unlock()
	}
}

// verifyAccount checks that no successful write was lost
func verifyAccount(client *http.Client, baseURL string, accountID uint64, stats *TestStats) error {
	resp, err := client.Get(fmt.Sprintf("%s/accounts/%d", baseURL, accountID))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var account accountPayload
	if err := json.NewDecoder(resp.Body).Decode(&account); err != nil {
		return err
	}

	if len(account.TransactionRecords) != stats.SuccessfulRequests {
		return fmt.Errorf("expected %d records, found %d", stats.SuccessfulRequests, len(account.TransactionRecords))
	}
	if math.Abs(account.Balance-stats.ExpectedNet) > 1e-6 {
		return fmt.Errorf("expected balance %.2f, found %.2f", stats.ExpectedNet, account.Balance)
	}
	return nil
}

func postJSON(client *http.Client, url string, body, out any) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return err
	}
	resp, err := client.Post(url, "application/json", bytes.NewReader(raw))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("HTTP status code %d", resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func printResults(stats *TestStats) {
	tps := float64(stats.SuccessfulRequests) / stats.TotalTime.Seconds()

	var p50, p90, p99, maxRT time.Duration
	if n := len(stats.ResponseTimes); n > 0 {
		sorted := slices.Clone(stats.ResponseTimes)
		slices.Sort(sorted)
		p50, p90, p99, maxRT = sorted[n*50/100], sorted[n*90/100], sorted[n*99/100], sorted[n-1]
	}

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", stats.TotalRequests)
	fmt.Printf("Successful Requests: %d\n", stats.SuccessfulRequests)
	fmt.Printf("Failed Requests:     %d\n", stats.FailedRequests)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())
	fmt.Printf("Throughput:          %.2f records/s\n", tps)
	fmt.Printf("P50 / P90 / P99:     %v / %v / %v\n", p50, p90, p99)
	fmt.Printf("Max Response:        %v\n", maxRT)

	fmt.Println("\n----------------- SCENARIO DISTRIBUTION -----------------")
	for name, count := range stats.ScenarioStats {
		fmt.Printf("%-15s: %d\n", name, count)
	}

	if stats.FailedRequests > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d\n", errMsg, count)
		}
	}
	fmt.Println("================================================")
}
