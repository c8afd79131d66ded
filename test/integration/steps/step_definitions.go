package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"
)

const testPassword = "Senha@12345"

// registerAPISteps registers HTTP request steps.
func registerAPISteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the API server is running$`, theAPIServerIsRunning)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)
	ctx.Step(`^I set header "([^"]*)" to "([^"]*)"$`, iSetHeaderTo)
	ctx.Step(`^I clear the access token$`, iClearTheAccessToken)
	ctx.Step(`^I upload a (\d+)x(\d+) PNG logo to "([^"]*)"$`, iUploadAPNGLogoTo)
}

// registerFixtureSteps registers steps that prepare state through the API.
func registerFixtureSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^I am registered and logged in as "([^"]*)"$`, iAmRegisteredAndLoggedInAs)
	ctx.Step(`^the current date is "([^"]*)"$`, theCurrentDateIs)
	ctx.Step(`^a product "([^"]*)" priced "([^"]*)" exists as "([^"]*)"$`, aProductPricedExistsAs)
	ctx.Step(`^I save the response field "([^"]*)" as "([^"]*)"$`, iSaveTheResponseFieldAs)
	ctx.Step(`^the email queue is processed$`, theEmailQueueIsProcessed)
}

// registerResponseSteps registers response validation steps.
func registerResponseSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the response should be JSON$`, theResponseShouldBeJSON)
	ctx.Step(`^the response should contain "([^"]*)"$`, theResponseShouldContain)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, theResponseFieldShouldExist)
	ctx.Step(`^the response array "([^"]*)" should have (\d+) items?$`, theResponseArrayShouldHaveItems)
	ctx.Step(`^the response header "([^"]*)" should contain "([^"]*)"$`, theResponseHeaderShouldContain)
	ctx.Step(`^the response body should start with "([^"]*)"$`, theResponseBodyShouldStartWith)
	ctx.Step(`^the table "([^"]*)" should have (\d+) rows?$`, theTableShouldHaveRows)
	ctx.Step(`^an email should have been sent to "([^"]*)"$`, anEmailShouldHaveBeenSentTo)
}

func testContext(ctx context.Context) (*TestContext, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return nil, fmt.Errorf("test context not found")
	}
	return tc, nil
}

// Request steps

func theAPIServerIsRunning(ctx context.Context) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	if tc.server == nil {
		return fmt.Errorf("test server is not running")
	}
	return nil
}

func iSendARequestTo(ctx context.Context, method, endpoint string) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	return tc.do(method, endpoint, "", nil)
}

func iSendARequestToWithBody(ctx context.Context, method, endpoint string, body *godog.DocString) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	return tc.do(method, endpoint, "application/json", []byte(tc.substitute(body.Content)))
}

func iSetHeaderTo(ctx context.Context, header, value string) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	tc.requestHeaders[header] = value
	return nil
}

func iClearTheAccessToken(ctx context.Context) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	tc.accessToken = ""
	return nil
}

func iUploadAPNGLogoTo(ctx context.Context, width, height int, endpoint string) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: 20, G: 120, B: 200, A: 255})
		}
	}
	var pngData bytes.Buffer
	if err := png.Encode(&pngData, img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("logo", "logo.png")
	if err != nil {
		return err
	}
	if _, err := part.Write(pngData.Bytes()); err != nil {
		return err
	}
	if err := writer.Close(); err != nil {
		return err
	}

	return tc.do(http.MethodPost, endpoint, writer.FormDataContentType(), body.Bytes())
}

// do sends the request and records the response. {name} placeholders in the
// endpoint are replaced with saved values.
func (tc *TestContext) do(method, endpoint, contentType string, payload []byte) error {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, tc.server.URL+tc.substitute(endpoint), reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for key, value := range tc.requestHeaders {
		req.Header.Set(key, value)
	}
	if tc.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+tc.accessToken)
	}

	resp, err := tc.server.Client().Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	tc.response = resp
	tc.responseBody, err = io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	return nil
}

func (tc *TestContext) substitute(content string) string {
	for name, value := range tc.saved {
		content = strings.ReplaceAll(content, "{"+name+"}", value)
	}
	return strings.ReplaceAll(content, "{refresh_token}", tc.refreshToken)
}

// Fixture steps

func iAmRegisteredAndLoggedInAs(ctx context.Context, userEmail string) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}

	payload, _ := json.Marshal(map[string]string{
		"email":    userEmail,
		"name":     strings.Split(userEmail, "@")[0],
		"password": testPassword,
	})
	if err := tc.do(http.MethodPost, "/api/v1/auth/register", "application/json", payload); err != nil {
		return err
	}
	if tc.response.StatusCode != http.StatusCreated {
		return fmt.Errorf("register failed with status %d: %s", tc.response.StatusCode, tc.responseBody)
	}

	var auth struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}
	if err := json.Unmarshal(tc.responseBody, &auth); err != nil {
		return fmt.Errorf("failed to parse auth response: %w", err)
	}
	tc.accessToken = auth.AccessToken
	tc.refreshToken = auth.RefreshToken
	return nil
}

func theCurrentDateIs(ctx context.Context, date string) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	day, err := time.ParseInLocation("2006-01-02", date, tc.cfg.Report.TimeLocation())
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", date, err)
	}
	tc.clock.SetCurrentTime(day.Add(12 * time.Hour))
	return nil
}

func aProductPricedExistsAs(ctx context.Context, name, price, key string) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}

	payload := fmt.Sprintf(`{"name": %q, "price": %s, "stock": 100}`, name, price)
	if err := tc.do(http.MethodPost, "/api/v1/products", "application/json", []byte(payload)); err != nil {
		return err
	}
	if tc.response.StatusCode != http.StatusCreated {
		return fmt.Errorf("product creation failed with status %d: %s", tc.response.StatusCode, tc.responseBody)
	}
	return iSaveTheResponseFieldAs(ctx, "id", key)
}

func iSaveTheResponseFieldAs(ctx context.Context, field, key string) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	value, err := tc.responseField(field)
	if err != nil {
		return err
	}
	tc.saved[key] = fmt.Sprintf("%v", value)
	return nil
}

func theEmailQueueIsProcessed(ctx context.Context) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	tc.injector.EmailWorker.ProcessNow(ctx)
	return nil
}

// Response steps

func theResponseStatusShouldBe(ctx context.Context, expectedStatus int) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	if tc.response == nil {
		return fmt.Errorf("no response received")
	}
	if tc.response.StatusCode != expectedStatus {
		return fmt.Errorf("expected status %d, got %d. Body: %s", expectedStatus, tc.response.StatusCode, string(tc.responseBody))
	}
	return nil
}

func theResponseShouldBeJSON(ctx context.Context) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	var js json.RawMessage
	if err := json.Unmarshal(tc.responseBody, &js); err != nil {
		return fmt.Errorf("response is not valid JSON: %w", err)
	}
	return nil
}

func theResponseShouldContain(ctx context.Context, expected string) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	if !strings.Contains(string(tc.responseBody), expected) {
		return fmt.Errorf("response does not contain '%s'. Body: %s", expected, string(tc.responseBody))
	}
	return nil
}

func theResponseFieldShouldBe(ctx context.Context, field, expected string) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	value, err := tc.responseField(field)
	if err != nil {
		return err
	}
	actual := fmt.Sprintf("%v", value)
	if actual != expected {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expected, actual)
	}
	return nil
}

func theResponseFieldShouldExist(ctx context.Context, field string) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	_, err = tc.responseField(field)
	return err
}

func theResponseArrayShouldHaveItems(ctx context.Context, field string, expected int) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	value, err := tc.responseField(field)
	if err != nil {
		return err
	}
	items, ok := value.([]interface{})
	if !ok {
		if value == nil && expected == 0 {
			return nil
		}
		return fmt.Errorf("field '%s' is not an array: %v", field, value)
	}
	if len(items) != expected {
		return fmt.Errorf("field '%s' expected %d items, got %d", field, expected, len(items))
	}
	return nil
}

func theResponseHeaderShouldContain(ctx context.Context, header, expected string) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	actual := tc.response.Header.Get(header)
	if !strings.Contains(actual, expected) {
		return fmt.Errorf("header '%s' expected to contain '%s', got '%s'", header, expected, actual)
	}
	return nil
}

func theResponseBodyShouldStartWith(ctx context.Context, prefix string) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	if !bytes.HasPrefix(tc.responseBody, []byte(prefix)) {
		head := tc.responseBody
		if len(head) > 16 {
			head = head[:16]
		}
		return fmt.Errorf("body expected to start with %q, got %q", prefix, head)
	}
	return nil
}

func theTableShouldHaveRows(ctx context.Context, table string, expected int) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	count, err := tc.db.Count(table)
	if err != nil {
		return fmt.Errorf("failed to count %s: %w", table, err)
	}
	if count != int64(expected) {
		return fmt.Errorf("table '%s' expected %d rows, got %d", table, expected, count)
	}
	return nil
}

func anEmailShouldHaveBeenSentTo(ctx context.Context, recipient string) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	for _, sent := range tc.emailSender.Sent() {
		if sent.To == recipient {
			return nil
		}
	}
	return fmt.Errorf("no email sent to %s (sent %d emails)", recipient, len(tc.emailSender.Sent()))
}

// responseField resolves a dot separated path such as "sale.items.0.subtotal"
// in the JSON response body.
func (tc *TestContext) responseField(path string) (interface{}, error) {
	var data interface{}
	if err := json.Unmarshal(tc.responseBody, &data); err != nil {
		return nil, fmt.Errorf("failed to parse response JSON: %w", err)
	}

	current := data
	for _, part := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]interface{}:
			value, ok := node[part]
			if !ok {
				return nil, fmt.Errorf("field '%s' not found in response: %s", path, tc.responseBody)
			}
			current = value
		case []interface{}:
			index, err := strconv.Atoi(part)
			if err != nil || index < 0 || index >= len(node) {
				return nil, fmt.Errorf("index '%s' out of range in '%s'", part, path)
			}
			current = node[index]
		default:
			return nil, fmt.Errorf("field '%s' not found in response: %s", path, tc.responseBody)
		}
	}
	return current, nil
}
