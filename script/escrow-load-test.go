package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Scenario is one kind of request the generator sends
type Scenario struct {
	Name   string
	Method string
	Path   string // fmt pattern taking the account
	Body   func(now time.Time) any
}

// Result contains metrics for a single request
type Result struct {
	Scenario     string
	Account      string
	StatusCode   int
	ResponseTime time.Duration
	Err          error
}

// Stats contains aggregated run statistics
type Stats struct {
	mu            sync.Mutex
	total         int
	responseTimes []time.Duration
	byStatus      map[int]int
	byScenario    map[string]int
	byAccount     map[string]int
	transportErrs map[string]int
}

func newStats(total int) *Stats {
	return &Stats{
		total:         total,
		responseTimes: make([]time.Duration, 0, total),
		byStatus:      make(map[int]int),
		byScenario:    make(map[string]int),
		byAccount:     make(map[string]int),
		transportErrs: make(map[string]int),
	}
}

func (s *Stats) add(r Result) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byScenario[r.Scenario]++
	s.byAccount[r.Account]++
	if r.Err != nil {
		s.transportErrs[r.Err.Error()]++
		return
	}
	s.byStatus[r.StatusCode]++
	s.responseTimes = append(s.responseTimes, r.ResponseTime)
}

func (s *Stats) completed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, c := range s.byScenario {
		n += c
	}
	return n
}

// Expected business outcomes such as 422 (lock not expired) count as served
func served(status int) bool {
	return status < http.StatusInternalServerError
}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent workers")
	totalRequests := flag.Int("n", 200, "Total number of requests to make")
	accountsFlag := flag.String("a", "alice,bob,carol", "Comma-separated accounts to spread load across")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL of the API")
	delayMs := flag.Int("delay", 50, "Delay between requests of one worker in milliseconds")
	lockSeconds := flag.Int64("lock", 5, "Lock period of generated deposits in seconds")
	approve := flag.String("approve", "1000000000000000000000000", "Allowance approved for each account before the run, empty to skip")
	flag.Parse()

	var accounts []string
	for _, a := range strings.Split(*accountsFlag, ",") {
		if a = strings.TrimSpace(a); a != "" {
			accounts = append(accounts, a)
		}
	}
	if len(accounts) == 0 {
		accounts = []string{"alice"}
	}

	scenarios := []Scenario{
		{Name: "deposit", Method: http.MethodPost, Path: "/escrow/%s/deposit", Body: func(now time.Time) any {
			return map[string]any{
				"amount":      "1000000000000000000",
				"unlockTime":  now.Unix() + *lockSeconds,
				"operationId": uuid.NewString(),
			}
		}},
		{Name: "withdraw", Method: http.MethodPost, Path: "/escrow/%s/withdraw", Body: func(time.Time) any {
			return map[string]any{"amount": "1000000000000000000", "operationId": uuid.NewString()}
		}},
		{Name: "lock", Method: http.MethodGet, Path: "/escrow/%s/lock"},
		{Name: "balance", Method: http.MethodGet, Path: "/token/%s/balance"},
	}

	client := &http.Client{Timeout: 10 * time.Second}

	if *approve != "" {
		for _, account := range accounts {
			status, _, err := send(client, *baseURL, http.MethodPost, fmt.Sprintf("/token/%s/approve", account), map[string]any{"amount": *approve})
			if err != nil || status != http.StatusOK {
				fmt.Printf("Approve for %s failed: status %d, err %v\n", account, status, err)
			}
		}
	}

	fmt.Printf("Load testing %s across %d accounts: %v\n", *baseURL, len(accounts), accounts)
	fmt.Printf("Concurrency: %d, requests: %d, delay: %d ms, lock period: %ds\n", *concurrency, *totalRequests, *delayMs, *lockSeconds)

	stats := newStats(*totalRequests)
	jobs := make(chan int)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				done := stats.completed()
				fmt.Printf("Progress: %d/%d (%.1f%%)\n", done, *totalRequests, float64(done)/float64(*totalRequests)*100)
			}
		}
	}()

	start := time.Now()
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(jobs)
		for i := 0; i < *totalRequests; i++ {
			select {
			case jobs <- i:
			case <-gCtx.Done():
				return gCtx.Err()
			}
		}
		return nil
	})
	for w := 0; w < *concurrency; w++ {
		g.Go(func() error {
			for range jobs {
				if *delayMs > 0 {
					time.Sleep(time.Duration(*delayMs) * time.Millisecond)
				}
				account := accounts[rand.Intn(len(accounts))]
				scenario := scenarios[rand.Intn(len(scenarios))]

				var body any
				if scenario.Body != nil {
					body = scenario.Body(time.Now())
				}
				began := time.Now()
				status, _, err := send(client, *baseURL, scenario.Method, fmt.Sprintf(scenario.Path, account), body)
				stats.add(Result{
					Scenario:     scenario.Name,
					Account:      account,
					StatusCode:   status,
					ResponseTime: time.Since(began),
					Err:          err,
				})
			}
			return nil
		})
	}
	_ = g.Wait()
	cancel()

	printResults(stats, time.Since(start))
}

func send(client *http.Client, baseURL, method, path string, body any) (int, []byte, error) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return 0, nil, err
		}
	}
	req, err := http.NewRequest(method, baseURL+path, &buf)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	var out bytes.Buffer
	_, _ = out.ReadFrom(resp.Body)
	return resp.StatusCode, out.Bytes(), nil
}

func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	idx := len(sorted) * p / 100
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}

func printResults(stats *Stats, elapsed time.Duration) {
	stats.mu.Lock()
	defer stats.mu.Unlock()

	times := slices.Clone(stats.responseTimes)
	slices.Sort(times)

	servedCount := 0
	for status, count := range stats.byStatus {
		if served(status) {
			servedCount += count
		}
	}

	var total time.Duration
	for _, t := range times {
		total += t
	}
	var avg time.Duration
	if len(times) > 0 {
		avg = total / time.Duration(len(times))
	}

	fmt.Println("\n================= RESULTS =================")
	fmt.Printf("Requests:        %d\n", stats.total)
	fmt.Printf("Served (<500):   %d (%.1f%%)\n", servedCount, float64(servedCount)/float64(stats.total)*100)
	fmt.Printf("Elapsed:         %.2fs\n", elapsed.Seconds())
	fmt.Printf("Throughput:      %.2f req/s\n", float64(len(times))/elapsed.Seconds())

	fmt.Println("\n--------------- RESPONSE TIMES ---------------")
	fmt.Printf("Average: %v\n", avg)
	if len(times) > 0 {
		fmt.Printf("Min:     %v\n", times[0])
		fmt.Printf("Max:     %v\n", times[len(times)-1])
	}
	fmt.Printf("P50:     %v\n", percentile(times, 50))
	fmt.Printf("P90:     %v\n", percentile(times, 90))
	fmt.Printf("P99:     %v\n", percentile(times, 99))

	fmt.Println("\n--------------- STATUS CODES ---------------")
	for status, count := range stats.byStatus {
		fmt.Printf("%d: %d\n", status, count)
	}

	fmt.Println("\n--------------- SCENARIOS ---------------")
	for name, count := range stats.byScenario {
		fmt.Printf("%-10s %d\n", name, count)
	}

	fmt.Println("\n--------------- ACCOUNTS ---------------")
	for account, count := range stats.byAccount {
		fmt.Printf("%-10s %d\n", account, count)
	}

	if len(stats.transportErrs) > 0 {
		fmt.Println("\n--------------- TRANSPORT ERRORS ---------------")
		for msg, count := range stats.transportErrs {
			fmt.Printf("%-40s %d\n", msg, count)
		}
	}
}
