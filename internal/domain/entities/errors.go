package entities

import (
	"errors"
	"fmt"
)

// Доменные ошибки
var (
	ErrInvalidExtension    = errors.New("file name must end with .pdf")
	ErrInvalidFileName     = errors.New("file name must not contain a path separator")
	ErrInvalidSelection    = errors.New("invalid selection")
	ErrNotEnoughSelections = errors.New("at least two PDFs must be selected")
	ErrInvalidPageRange    = errors.New("invalid page range")
	ErrInvalidSplitMode    = errors.New("unsupported split mode")
	ErrInvalidChoice       = errors.New("unsupported menu choice")
	ErrEmptyWatermark      = errors.New("watermark source has no pages")
	ErrFileNotFound        = errors.New("file not found")
	ErrFileExists          = errors.New("file already exists")
	ErrDirectoryNotFound   = errors.New("directory not found")
	ErrNoFilesFound        = errors.New("no PDF files found")
	ErrNotEnoughFiles      = errors.New("not enough PDFs to merge")
	ErrOutputIsSource      = errors.New("output file must differ from the selected PDFs")
)

// ErrorKind категория ошибки операции
type ErrorKind string

const (
	KindValidation ErrorKind = "validation"
	KindIO         ErrorKind = "io"
	KindNotFound   ErrorKind = "not_found"
)

// OperationError ошибка, которую возвращает любой сценарий.
// Err содержит доменную ошибку или исходную ошибку библиотеки/файловой системы.
type OperationError struct {
	Kind    ErrorKind
	Op      string
	Message string
	Err     error
}

func (e *OperationError) Error() string {
	msg := e.Message
	switch {
	case msg == "" && e.Err != nil:
		msg = e.Err.Error()
	case e.Err != nil && msg != e.Err.Error():
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	if e.Op == "" {
		return msg
	}
	return fmt.Sprintf("%s: %s", e.Op, msg)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

// NewValidationError создает ошибку валидации
func NewValidationError(op string, err error, message string) *OperationError {
	return &OperationError{Kind: KindValidation, Op: op, Message: message, Err: err}
}

// NewIOError создает ошибку ввода-вывода
func NewIOError(op string, err error, message string) *OperationError {
	return &OperationError{Kind: KindIO, Op: op, Message: message, Err: err}
}

// NewNotFoundError создает ошибку "не найдено"
func NewNotFoundError(op string, err error, message string) *OperationError {
	return &OperationError{Kind: KindNotFound, Op: op, Message: message, Err: err}
}

// IsKind проверяет категорию ошибки по всей цепочке
func IsKind(err error, kind ErrorKind) bool {
	var opErr *OperationError
	if errors.As(err, &opErr) {
		return opErr.Kind == kind
	}
	return false
}

// KindOf возвращает категорию ошибки или пустую строку для чужих ошибок
func KindOf(err error) ErrorKind {
	var opErr *OperationError
	if errors.As(err, &opErr) {
		return opErr.Kind
	}
	return ""
}
