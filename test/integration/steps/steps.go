//go:build integration

package steps

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/cucumber/godog"

	"github.com/finance-tracker/ledger/config"
	"github.com/finance-tracker/ledger/test/integration/mock"
)

var placeholder = regexp.MustCompile(`\{\{([^}]+)\}\}`)

// replacePlaceholders substitutes {{alias}} with ids saved earlier in the scenario.
func (t *testContext) replacePlaceholders(content string) string {
	return placeholder.ReplaceAllStringFunc(content, func(m string) string {
		if v, ok := t.saved[m[2:len(m)-2]]; ok {
			return v
		}
		return m
	})
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.executeRequest(method, t.replacePlaceholders(path), nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	payload := []byte(t.replacePlaceholders(body.Content))
	return t.executeRequest(method, t.replacePlaceholders(path), payload)
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	if t.server == nil {
		return errors.New("the API server is not running")
	}

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequest(method, t.server.URL+path, reader)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{status: resp.StatusCode}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
	} else {
		t.response.body = responseBody
	}
	return nil
}

// expect sends a request and fails unless the status matches.
func (t *testContext) expect(status int, method, path string, body any) error {
	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return err
		}
	}
	if err := t.executeRequest(method, path, payload); err != nil {
		return err
	}
	return t.theResponseStatusShouldBe(status)
}

func (t *testContext) iSaveTheResponseFieldAs(field, alias string) error {
	value, err := t.field(field)
	if err != nil {
		return err
	}
	t.saved[alias] = fmt.Sprintf("%v", value)
	return nil
}

func (t *testContext) anAccountExistsWithBalance(name, balance string) error {
	err := t.expect(http.StatusCreated, http.MethodPost, "/api/v1/accounts", map[string]any{
		"name":    name,
		"type":    "Bank",
		"balance": balance,
	})
	if err != nil {
		return err
	}
	return t.iSaveTheResponseFieldAs("id", name)
}

func (t *testContext) aCategoryOfTypeExists(name, categoryType string) error {
	err := t.expect(http.StatusCreated, http.MethodPost, "/api/v1/categories", map[string]any{
		"name": name,
		"type": categoryType,
	})
	if err != nil {
		return err
	}
	return t.iSaveTheResponseFieldAs("id", name)
}

func (t *testContext) aMonthlyBudgetExists(name, categoryName, amount string) error {
	err := t.expect(http.StatusCreated, http.MethodPost, "/api/v1/budgets", map[string]any{
		"name":      name,
		"category":  categoryName,
		"amount":    amount,
		"timeframe": "monthly",
	})
	if err != nil {
		return err
	}
	return t.iSaveTheResponseFieldAs("budgets.0.id", name)
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

// field resolves a dot separated path in the last response body.
func (t *testContext) field(path string) (any, error) {
	if t.response == nil {
		return nil, errors.New("no response received")
	}
	body, ok := t.response.body.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}
	value := getFieldValue(body, path)
	if value == nil {
		return nil, fmt.Errorf("field '%s' not found in response: %v", path, body)
	}
	return value, nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	value, err := t.field(field)
	if err != nil {
		return err
	}
	expectedValue = t.replacePlaceholders(expectedValue)
	if actualValue := fmt.Sprintf("%v", value); actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	_, err := t.field(field)
	return err
}

func (t *testContext) theResponseFieldShouldNotExist(field string) error {
	if _, err := t.field(field); err == nil {
		return fmt.Errorf("field '%s' should not be in response: %v", field, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldHaveItems(field string, count int) error {
	value, err := t.field(field)
	if err != nil {
		return err
	}
	items, ok := value.([]any)
	if !ok {
		return fmt.Errorf("field '%s' is not a list: %v", field, value)
	}
	if len(items) != count {
		return fmt.Errorf("field '%s' expected %d items, got %d", field, count, len(items))
	}
	return nil
}

func (t *testContext) accountShouldHaveBalance(name, balance string) error {
	id, ok := t.saved[name]
	if !ok {
		return fmt.Errorf("unknown account %q", name)
	}
	if err := t.expect(http.StatusOK, http.MethodGet, "/api/v1/accounts/"+id, nil); err != nil {
		return err
	}
	return t.theResponseFieldShouldBe("balance", balance)
}

func (t *testContext) budgetShouldHaveSpent(name, spent string) error {
	id, ok := t.saved[name]
	if !ok {
		return fmt.Errorf("unknown budget %q", name)
	}
	if err := t.expect(http.StatusOK, http.MethodGet, "/api/v1/budgets/"+id, nil); err != nil {
		return err
	}
	return t.theResponseFieldShouldBe("spent", spent)
}

func (t *testContext) theSQLiteStoreShouldContainBlobs(count int) error {
	if t.backend != config.StoreSQLite {
		return fmt.Errorf("scenario runs on %q, not sqlite", t.backend)
	}
	actual, err := mock.NewDb().CountBlobs()
	if err != nil {
		return err
	}
	if actual != int64(count) {
		return fmt.Errorf("expected %d blobs, got %d", count, actual)
	}
	return nil
}

func getFieldValue(object map[string]any, dotSeparatedField string) any {
	var field any = object
	for _, currentField := range strings.Split(dotSeparatedField, ".") {
		if field == nil {
			return nil
		}
		if i, err := strconv.Atoi(currentField); err == nil {
			arr, ok := field.([]any)
			if !ok || i >= len(arr) {
				return nil
			}
			field = arr[i]
			continue
		}
		m, ok := field.(map[string]any)
		if !ok {
			return nil
		}
		field = m[currentField]
	}
	return field
}
