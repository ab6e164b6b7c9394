package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/osse101/SkinTrade_Go/internal/economy"
	"github.com/osse101/SkinTrade_Go/internal/handler"
	"github.com/osse101/SkinTrade_Go/internal/opening"
)

// SmokeCommand walks a running service through sign-in, one case opening and a sale.
type SmokeCommand struct{}

func (c *SmokeCommand) Name() string {
	return "smoke"
}

func (c *SmokeCommand) Description() string {
	return "Sign in, open the cheapest case, wait for the reveal and sell it (API_URL)"
}

type apiClient struct {
	base  string
	token string
	http  *http.Client
}

func (a *apiClient) call(method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, a.base+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}

	resp, err := a.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var apiErr handler.ErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		return fmt.Errorf("%s %s: %d %s", method, path, resp.StatusCode, apiErr.Error)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *SmokeCommand) Run(args []string) error {
	client := &apiClient{base: apiURL() + "/api/v1", http: &http.Client{Timeout: 10 * time.Second}}
	PrintHeader(fmt.Sprintf("Smoke test (%s)", client.base))

	var login handler.LoginResponse
	if err := client.call(http.MethodPost, "/auth/login", handler.LoginRequest{Name: "Smoke Test"}, &login); err != nil {
		return err
	}
	client.token = login.Token
	PrintSuccess("Signed in as %s with %s", login.User.Name, login.Balance.Formatted)

	var list handler.CaseListResponse
	if err := client.call(http.MethodGet, "/cases", nil, &list); err != nil {
		return err
	}
	if len(list.Cases) == 0 {
		return errors.New("no cases available")
	}
	cheapest := list.Cases[0]
	for _, cs := range list.Cases[1:] {
		if cs.Price < cheapest.Price {
			cheapest = cs
		}
	}

	var opened opening.OpenResult
	if err := client.call(http.MethodPost, "/cases/"+cheapest.ID+"/open", nil, &opened); err != nil {
		return err
	}
	PrintSuccess("Opened %s for %d, reveal in %dms", cheapest.Name, opened.Price, opened.RevealAfterMs)

	spin, err := c.waitForReveal(client, opened)
	if err != nil {
		return err
	}
	PrintSuccess("Revealed %s (%s), worth %d", spin.Item.Name, spin.Item.Rarity, spin.Item.Value)

	var sale economy.Sale
	if err := client.call(http.MethodPost, "/inventory/sell", handler.SelectionRequest{IDs: []string{spin.Item.InstanceID}}, &sale); err != nil {
		return err
	}
	PrintSuccess("Sold for %d, balance now %d", sale.Total, sale.Balance)

	if err := client.call(http.MethodPost, "/auth/logout", nil, nil); err != nil {
		PrintWarning("Logout failed: %v", err)
	}
	return nil
}

func (c *SmokeCommand) waitForReveal(client *apiClient, opened opening.OpenResult) (opening.SpinView, error) {
	deadline := time.Now().Add(time.Duration(opened.RevealAfterMs)*time.Millisecond + 10*time.Second)
	time.Sleep(time.Duration(opened.RevealAfterMs) * time.Millisecond)

	for time.Now().Before(deadline) {
		var spin opening.SpinView
		if err := client.call(http.MethodGet, "/spins/"+opened.SpinID, nil, &spin); err != nil {
			return spin, err
		}
		if spin.Status == opening.StatusRevealed && spin.Item != nil {
			return spin, nil
		}
		time.Sleep(250 * time.Millisecond)
	}
	return opening.SpinView{}, fmt.Errorf("spin %s not revealed in time", opened.SpinID)
}
