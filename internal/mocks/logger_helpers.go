package mocks

import (
	mock "github.com/stretchr/testify/mock"
)

const maxLogFields = 8

// NewQuietLogger returns a Logger mock that accepts any log call with up to
// maxLogFields fields without asserting on it.
func NewQuietLogger(t interface {
	mock.TestingT
	Cleanup(func())
}) *Logger {
	l := NewLogger(t)
	for n := 0; n <= maxLogFields; n++ {
		fields := make([]interface{}, n)
		for i := range fields {
			fields[i] = mock.Anything
		}
		l.EXPECT().Debug(mock.Anything, fields...).Maybe()
		l.EXPECT().Info(mock.Anything, fields...).Maybe()
		l.EXPECT().Warn(mock.Anything, fields...).Maybe()
		l.EXPECT().Error(mock.Anything, fields...).Maybe()
	}
	return l
}
