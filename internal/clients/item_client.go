// internal/clients/item_client.go
package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"itemstore/internal/inventory"
)

// ItemClient is a typed HTTP client for the item store API.
type ItemClient struct {
	baseURL string
}

func NewItemClient(baseURL string) *ItemClient {
	return &ItemClient{baseURL: baseURL}
}

// mutationResponse is the envelope returned by create, update and delete.
type mutationResponse struct {
	Message string          `json:"message"`
	Item    *inventory.Item `json:"item"`
}

type listResponse struct {
	Items []*inventory.Item `json:"items"`
	Count int               `json:"count"`
}

func (c *ItemClient) ListItems(ctx context.Context) ([]*inventory.Item, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/items", nil)
	if err != nil {
		return nil, 0, err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, 0, responseError(resp)
	}

	var body listResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, 0, err
	}
	return body.Items, body.Count, nil
}

func (c *ItemClient) GetItem(ctx context.Context, id int) (*inventory.Item, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/items/%d", c.baseURL, id), nil)
	if err != nil {
		return nil, err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, responseError(resp)
	}

	var item inventory.Item
	if err := json.NewDecoder(resp.Body).Decode(&item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *ItemClient) CreateItem(ctx context.Context, draft inventory.ItemDraft) (*inventory.Item, error) {
	return c.send(ctx, http.MethodPost, c.baseURL+"/items", draft, http.StatusCreated)
}

func (c *ItemClient) UpdateItem(ctx context.Context, id int, patch inventory.ItemPatch) (*inventory.Item, error) {
	return c.send(ctx, http.MethodPut, fmt.Sprintf("%s/items/%d", c.baseURL, id), patch, http.StatusOK)
}

func (c *ItemClient) DeleteItem(ctx context.Context, id int) (*inventory.Item, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, fmt.Sprintf("%s/items/%d", c.baseURL, id), nil)
	if err != nil {
		return nil, err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, responseError(resp)
	}

	var body mutationResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}
	return body.Item, nil
}

func (c *ItemClient) send(ctx context.Context, method, url string, payload interface{}, wantStatus int) (*inventory.Item, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewBuffer(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		return nil, responseError(resp)
	}

	var body mutationResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}
	return body.Item, nil
}

// responseError surfaces the server's detail message when one is present.
func responseError(resp *http.Response) error {
	data, _ := io.ReadAll(resp.Body)

	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(data, &body); err == nil && body.Detail != "" {
		return fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, body.Detail)
	}
	return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
}
