//go:build ignore

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/fatih/color"
)

var baseURL = "http://localhost:3000/api"

type note struct {
	Id        string     `json:"id"`
	Title     string     `json:"title"`
	Status    string     `json:"status"`
	Links     []link     `json:"links"`
	Backlinks []backlink `json:"backlinks"`
}

type link struct {
	TargetNoteId       string `json:"targetNoteId"`
	RelationshipTypeId string `json:"relationshipTypeId"`
}

type backlink struct {
	SourceNoteId       string `json:"sourceNoteId"`
	SourceNoteTitle    string `json:"sourceNoteTitle"`
	RelationshipTypeId string `json:"relationshipTypeId"`
}

type relationshipType struct {
	Id        string `json:"id"`
	Label     string `json:"label"`
	IsDefault bool   `json:"isDefault"`
}

var client = &http.Client{Timeout: 10 * time.Second}

// Request helper
func sendRequest(method, url string, body interface{}, out interface{}) (int, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		bodyReader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, baseURL+url, bodyReader)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, err
	}
	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return resp.StatusCode, fmt.Errorf("decode %s: %w", string(respBody), err)
		}
	}
	return resp.StatusCode, nil
}

func must(step string, status, want int, err error) {
	if err != nil {
		color.Red("%s failed: %v", step, err)
		os.Exit(1)
	}
	if status != want {
		color.Red("%s: expected status %d, got %d", step, want, status)
		os.Exit(1)
	}
	color.Green("%s: %d", step, status)
}

func main() {
	if url := os.Getenv("NOTEGRAPH_API_URL"); url != "" {
		baseURL = url
	}
	color.Cyan("Starting note graph smoke flow against %s\n", baseURL)

	color.Yellow("\n1. Relationship types")
	var relTypes []relationshipType
	status, err := sendRequest("GET", "/relationship_types", nil, &relTypes)
	must("list relationship types", status, http.StatusOK, err)

	var supportsId string
	defaults := 0
	for _, rt := range relTypes {
		if rt.IsDefault {
			defaults++
		}
		if rt.IsDefault && rt.Label == "supports" {
			supportsId = rt.Id
		}
	}
	if defaults != 3 || supportsId == "" {
		color.Red("expected 3 defaults including 'supports', got %d", defaults)
		os.Exit(1)
	}

	color.Yellow("\n2. Create notes A and B")
	var a, b note
	status, err = sendRequest("POST", "/notes", map[string]string{"title": "A"}, &a)
	must("create A", status, http.StatusCreated, err)
	status, err = sendRequest("POST", "/notes", map[string]string{"title": "B"}, &b)
	must("create B", status, http.StatusCreated, err)
	if a.Status != "staged" || len(a.Links) != 0 {
		color.Red("new note should be staged with no links, got %+v", a)
		os.Exit(1)
	}

	color.Yellow("\n3. Commit B, then A -> B")
	status, err = sendRequest("POST", "/notes/"+b.Id+"/commit", map[string]interface{}{"links": []link{}}, nil)
	must("commit B", status, http.StatusOK, err)
	status, err = sendRequest("POST", "/notes/"+a.Id+"/commit", map[string]interface{}{
		"links": []link{{TargetNoteId: b.Id, RelationshipTypeId: supportsId}},
	}, nil)
	must("commit A", status, http.StatusOK, err)

	color.Yellow("\n4. Backlinks on B")
	var shown note
	status, err = sendRequest("GET", "/notes/"+b.Id, nil, &shown)
	must("get B", status, http.StatusOK, err)

	want := backlink{SourceNoteId: a.Id, SourceNoteTitle: "A", RelationshipTypeId: supportsId}
	if len(shown.Backlinks) != 1 || shown.Backlinks[0] != want {
		color.Red("unexpected backlinks: %+v", shown.Backlinks)
		os.Exit(1)
	}

	color.Yellow("\n5. Error paths")
	status, err = sendRequest("GET", "/notes/not-a-valid-id", nil, nil)
	must("malformed id", status, http.StatusBadRequest, err)
	status, err = sendRequest("POST", "/notes/00000000-0000-0000-0000-000000000000/commit", map[string]interface{}{"links": []link{}}, nil)
	must("commit missing note", status, http.StatusNotFound, err)

	color.Cyan("\nSmoke flow passed")
}
