package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"sync/atomic"
	"time"
)

const (
	baseURL       = "http://localhost:8080"
	storeID       = "loadgen-store"
	productID     = "loadgen-item"
	totalRequests = 200
	concurrency   = 20
)

type updateRequest struct {
	StoreID   string `json:"storeId"`
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	Action    string `json:"action"`
}

type updateResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    *struct {
		Quantity int   `json:"quantity"`
		Version  int64 `json:"version"`
	} `json:"data"`
}

func main() {
	client := &http.Client{Timeout: 10 * time.Second}

	// Reset the product to a known state.
	if _, err := post(client, updateRequest{StoreID: storeID, ProductID: productID, Quantity: 0, Action: "set"}); err != nil {
		log.Fatalf("reset failed (is the server running?): %v", err)
	}

	var successCount atomic.Int32
	var failCount atomic.Int32
	var wg sync.WaitGroup

	start := time.Now()
	sem := make(chan struct{}, concurrency)

	for i := 0; i < totalRequests; i++ {
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()

			resp, err := post(client, updateRequest{StoreID: storeID, ProductID: productID, Quantity: 1, Action: "add"})
			if err == nil && resp.Success {
				successCount.Add(1)
			} else {
				failCount.Add(1)
			}
		}()
	}

	wg.Wait()
	elapsed := time.Since(start)

	final, err := post(client, updateRequest{StoreID: storeID, ProductID: productID, Quantity: 0, Action: "add"})
	if err != nil {
		log.Fatalf("final read failed: %v", err)
	}

	fmt.Println("========== LOADGEN RESULTS ==========")
	fmt.Printf("Total Requests:   %d\n", totalRequests)
	fmt.Printf("Successful:       %d\n", successCount.Load())
	fmt.Printf("Failed:           %d\n", failCount.Load())
	fmt.Printf("Duration:         %v\n", elapsed)
	fmt.Printf("Final Quantity:   %d\n", final.Data.Quantity)
	fmt.Printf("Final Version:    %d\n", final.Data.Version)
	fmt.Println("=====================================")

	if final.Data.Quantity == int(successCount.Load()) {
		fmt.Println("PASS: final quantity equals successful adds")
	} else {
		fmt.Printf("FAIL: expected quantity %d, got %d\n", successCount.Load(), final.Data.Quantity)
	}
}

func post(client *http.Client, req updateRequest) (*updateResponse, error) {
	body, _ := json.Marshal(req)
	resp, err := client.Post(baseURL+"/update", "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var out updateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	if out.Data == nil {
		return nil, fmt.Errorf("update rejected: %s", out.Message)
	}
	return &out, nil
}
