// Package mocks fetcher 패키지의 테스트를 위한 Mock 구현체를 제공합니다.
//
// MockFetcher는 reflection 기반 mock 라이브러리를 사용하지 않는 수동 구현체입니다.
// GET/POST/PATCH/UPDATE(PUT) 네 개의 Verb 슬롯을 가지며, 모든 슬롯은 항상 같은 동작으로 설정됩니다.
//
//   - SetResponses: 각 슬롯이 응답 목록을 순서대로 무한 반복하여 반환 (슬롯별 독립 위치)
//   - SetResponseError: 각 슬롯이 호출될 때마다 동일한 에러 값을 반환
//
// 사용 예:
//
//	m := mocks.NewMockFetcher()
//	m.SetResponse(fixtures.GetWorkspaces)
//
//	client := api.NewClockifyAPI(api.NewAPIServer(m, baseURL))
//	workspaces, err := client.GetWorkspaces(ctx, apiKey)
//
//	assert.True(t, m.Called())
//
// 각 테스트는 NewMockFetcher()로 자신만의 인스턴스를 생성해야 하며, 패키지 수준의 공유 인스턴스는 없습니다.
package mocks

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/darkkaiser/clockify-client/internal/clockify/fetcher"
	apperrors "github.com/darkkaiser/clockify-client/internal/pkg/errors"
)

// ErrNotConfigured SetResponse 계열 함수로 설정되기 전에 Verb 슬롯이 호출되면 반환되는 에러입니다.
var ErrNotConfigured = apperrors.New(apperrors.Internal, "Mock 응답이 설정되지 않은 상태에서 요청이 호출되었습니다")

// 컴파일 타임에 인터페이스 구현 여부를 검증합니다.
var _ fetcher.Fetcher = (*MockFetcher)(nil)

// Verb MockFetcher가 추적하는 HTTP 메서드 슬롯입니다.
type Verb int

const (
	VerbGet Verb = iota
	VerbPost
	VerbPatch
	VerbUpdate

	verbCount int = iota
)

var verbNames = [verbCount]string{"GET", "POST", "PATCH", "UPDATE"}

var verbMethods = [verbCount]string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodPut}

func (v Verb) String() string {
	if v >= 0 && int(v) < verbCount {
		return verbNames[v]
	}
	return fmt.Sprintf("Verb(%d)", int(v))
}

// Method Verb 슬롯이 처리하는 HTTP 메서드를 반환합니다. UPDATE 슬롯은 PUT 요청을 처리합니다.
func (v Verb) Method() string {
	if v >= 0 && int(v) < verbCount {
		return verbMethods[v]
	}
	return ""
}

// VerbOf HTTP 메서드에 대응하는 Verb 슬롯을 반환합니다.
func VerbOf(method string) (Verb, bool) {
	for i, m := range verbMethods {
		if m == method {
			return Verb(i), true
		}
	}
	return 0, false
}

// Call MockFetcher에 전달된 요청 한 건의 기록입니다.
type Call struct {
	Method string
	URL    string
	Header http.Header
	Body   []byte
}

// behavior Verb 슬롯이 호출될 때의 동작입니다.
type behavior interface {
	next() (*http.Response, error)
}

// cycleBehavior 응답 목록을 순서대로 무한 반복합니다.
type cycleBehavior struct {
	responses []MockResponse
	pos       int
}

func (b *cycleBehavior) next() (*http.Response, error) {
	r := b.responses[b.pos]
	b.pos = (b.pos + 1) % len(b.responses)
	return r.HTTPResponse(), nil
}

// failBehavior 항상 같은 에러 값을 반환합니다.
type failBehavior struct {
	err error
}

func (b *failBehavior) next() (*http.Response, error) {
	return nil, b.err
}

type verbSlot struct {
	behavior behavior
	calls    []Call
}

// MockFetcher Verb 슬롯별로 호출을 기록하고 설정된 응답/에러를 반환하는 Fetcher 구현체입니다.
type MockFetcher struct {
	mu    sync.Mutex
	slots [verbCount]verbSlot
}

// NewMockFetcher 아무 동작도 설정되지 않은 새로운 MockFetcher를 생성합니다.
func NewMockFetcher() *MockFetcher {
	return &MockFetcher{}
}

// SetResponse 모든 Verb 슬롯이 r을 반환하도록 설정합니다. SetResponses(r)와 같습니다.
func (m *MockFetcher) SetResponse(r MockResponse) {
	// 인자가 하나 이상이므로 에러가 발생하지 않는다.
	_ = m.SetResponses(r)
}

// SetResponses 모든 Verb 슬롯이 rs를 순서대로 무한 반복하여 반환하도록 설정합니다.
//
// 반복 위치는 슬롯마다 독립적이므로, GET 호출이 POST의 다음 응답을 바꾸지 않습니다.
// rs가 비어 있으면 InvalidInput 에러를 반환하며 기존 설정은 그대로 유지됩니다.
func (m *MockFetcher) SetResponses(rs ...MockResponse) error {
	if len(rs) == 0 {
		return apperrors.New(apperrors.InvalidInput, "Mock 응답 목록이 비어 있습니다")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.slots {
		m.slots[i].behavior = &cycleBehavior{
			responses: append([]MockResponse(nil), rs...),
		}
	}

	return nil
}

// SetResponseError 모든 Verb 슬롯이 호출될 때마다 err를 그대로 반환하도록 설정합니다.
// err가 nil이면 InvalidInput 에러를 반환하며 기존 설정은 그대로 유지됩니다.
func (m *MockFetcher) SetResponseError(err error) error {
	if err == nil {
		return apperrors.New(apperrors.InvalidInput, "Mock 에러가 nil입니다")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.slots {
		m.slots[i].behavior = &failBehavior{err: err}
	}

	return nil
}

// Do 요청 메서드에 해당하는 Verb 슬롯을 호출합니다.
// 추적하지 않는 메서드(DELETE, HEAD 등)는 InvalidInput 에러를 반환합니다.
func (m *MockFetcher) Do(req *http.Request) (*http.Response, error) {
	verb, ok := VerbOf(req.Method)
	if !ok {
		return nil, apperrors.Newf(apperrors.InvalidInput, "지원하지 않는 HTTP 메서드입니다: %s", req.Method)
	}

	var body []byte
	if req.Body != nil {
		var err error
		if body, err = io.ReadAll(req.Body); err != nil {
			return nil, apperrors.Wrap(err, apperrors.Internal, "요청 Body 읽기 실패")
		}
		_ = req.Body.Close()
		req.Body = io.NopCloser(bytes.NewReader(body))
	}

	var url string
	if req.URL != nil {
		url = req.URL.String()
	}

	header := req.Header.Clone()
	if header == nil {
		header = make(http.Header)
	}

	return m.invoke(verb, Call{
		Method: req.Method,
		URL:    url,
		Header: header,
		Body:   body,
	})
}

// Get GET 슬롯을 호출합니다.
func (m *MockFetcher) Get(ctx context.Context, url string) (*http.Response, error) {
	return fetcher.Get(ctx, m, url)
}

// Post POST 슬롯을 호출합니다.
func (m *MockFetcher) Post(ctx context.Context, url, contentType string, body io.Reader) (*http.Response, error) {
	return fetcher.Post(ctx, m, url, contentType, body)
}

func (m *MockFetcher) invoke(verb Verb, call Call) (*http.Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	slot := &m.slots[verb]
	slot.calls = append(slot.calls, call)

	if slot.behavior == nil {
		return nil, ErrNotConfigured
	}

	return slot.behavior.next()
}

// Called 생성 또는 마지막 Reset 이후 어느 Verb 슬롯이든 한 번 이상 호출되었는지 여부를 반환합니다.
func (m *MockFetcher) Called() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.slots {
		if len(m.slots[i].calls) > 0 {
			return true
		}
	}
	return false
}

// CallCount 지정된 Verb 슬롯이 호출된 횟수를 반환합니다.
func (m *MockFetcher) CallCount(verb Verb) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	if verb < 0 || int(verb) >= verbCount {
		return 0
	}
	return len(m.slots[verb].calls)
}

// Calls 지정된 Verb 슬롯에 기록된 요청 목록의 복사본을 반환합니다.
func (m *MockFetcher) Calls(verb Verb) []Call {
	m.mu.Lock()
	defer m.mu.Unlock()

	if verb < 0 || int(verb) >= verbCount {
		return nil
	}
	return append([]Call(nil), m.slots[verb].calls...)
}

// Reset 모든 Verb 슬롯의 호출 기록을 초기화합니다.
// 설정된 응답/에러와 응답 반복 위치는 유지됩니다.
func (m *MockFetcher) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.slots {
		m.slots[i].calls = nil
	}
}
