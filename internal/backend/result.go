package backend

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// GenericMessage is shown when the backend could not be reached or understood.
const GenericMessage = "Something went wrong. Please try again."

var ErrTransport = errors.New("backend unreachable")

// ServerError is a failure reported by the backend itself; Message is shown verbatim.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.Status, e.Message)
}

// NotFound reports whether err is a backend 404.
func NotFound(err error) bool {
	var se *ServerError
	return errors.As(err, &se) && se.Status == http.StatusNotFound
}

// Result is the single shape every backend call is normalized into:
// either OK with Data, or not OK with a displayable Error.
type Result[T any] struct {
	OK    bool
	Data  T
	Error string
	err   error
}

func Success[T any](data T) Result[T] {
	return Result[T]{OK: true, Data: data}
}

func Failure[T any](err error) Result[T] {
	return Result[T]{Error: Message(err), err: err}
}

// Err returns the underlying error, nil when OK.
func (r Result[T]) Err() error {
	if r.OK {
		return nil
	}
	if r.err == nil {
		return &ServerError{Status: http.StatusBadGateway, Message: r.Error}
	}
	return r.err
}

// Unpack splits the result into the usual (value, error) pair.
func (r Result[T]) Unpack() (T, error) {
	return r.Data, r.Err()
}

// envelope is the union of every response shape the backend uses.
type envelope struct {
	Success      *bool           `json:"success"`
	Data         json.RawMessage `json:"data"`
	Event        json.RawMessage `json:"event"`
	UpdatedEvent json.RawMessage `json:"updatedEvent"`
	Token        string          `json:"token"`
	CustomerID   string          `json:"customerId"`
	User         *struct {
		Role string `json:"Role"`
	} `json:"user"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (e envelope) failure() string {
	if e.Error != "" {
		return e.Error
	}
	return e.Message
}

type decoder[T any] func(env envelope) (T, error)

func field[T any](pick func(envelope) json.RawMessage) decoder[T] {
	return func(env envelope) (T, error) {
		var v T
		raw := pick(env)
		if len(raw) == 0 || string(raw) == "null" {
			return v, nil
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return v, fmt.Errorf("%w: decode response: %v", ErrTransport, err)
		}
		return v, nil
	}
}

func discard(envelope) (struct{}, error) {
	return struct{}{}, nil
}

func fromData(e envelope) json.RawMessage         { return e.Data }
func fromEvent(e envelope) json.RawMessage        { return e.Event }
func fromUpdatedEvent(e envelope) json.RawMessage { return e.UpdatedEvent }

// Message is the text to show for err: the backend's own message, or GenericMessage.
func Message(err error) string {
	var se *ServerError
	if errors.As(err, &se) {
		return se.Message
	}
	return GenericMessage
}
