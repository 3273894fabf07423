package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "server base URL")
	structureID := flag.String("structure", "1CRN", "structure to build")
	chain := flag.String("chain", "A", "chain to build")
	persist := flag.Bool("persist", false, "persist and read the network back")
	flag.Parse()

	client := &http.Client{Timeout: 3 * time.Minute}

	fmt.Println("Starting smoke test...")

	fmt.Println("1. Health check...")
	if _, ok := sendRequest(client, http.MethodGet, *baseURL+"/healthz", nil); !ok {
		fmt.Println("FAILED: Health check")
		os.Exit(1)
	}
	fmt.Println("PASSED: Health check")

	fmt.Println("2. Building network...")
	payload := map[string]interface{}{
		"structure_id": *structureID,
		"chain":        *chain,
		"persist":      *persist,
		"analyze":      true,
	}
	body, ok := sendRequest(client, http.MethodPost, *baseURL+"/networks", payload)
	if !ok {
		fmt.Println("FAILED: Build network")
		os.Exit(1)
	}
	var res struct {
		UUID  string   `json:"uuid"`
		Kind  string   `json:"kind"`
		Edges [][2]int `json:"edges"`
	}
	if err := json.Unmarshal(body, &res); err != nil || res.Kind != "success" {
		fmt.Printf("FAILED: Build network returned %q (%v)\n", res.Kind, err)
		os.Exit(1)
	}
	fmt.Printf("PASSED: Build network (%d contacts)\n", len(res.Edges))

	if !*persist {
		return
	}

	fmt.Println("3. Reading network back...")
	if _, ok := sendRequest(client, http.MethodGet, *baseURL+"/networks/"+res.UUID+"/edges", nil); !ok {
		fmt.Println("FAILED: Read network")
		os.Exit(1)
	}
	fmt.Println("PASSED: Read network")
}

func sendRequest(client *http.Client, method, url string, payload interface{}) ([]byte, bool) {
	var body io.Reader
	if payload != nil {
		jsonBytes, _ := json.Marshal(payload)
		body = bytes.NewBuffer(jsonBytes)
	}

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		fmt.Printf("Error creating request: %v\n", err)
		return nil, false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error sending request: %v\n", err)
		return nil, false
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Request failed with status %d: %s\n", resp.StatusCode, string(respBody))
		return nil, false
	}

	fmt.Printf("Response: %s\n", string(respBody))
	return respBody, true
}
