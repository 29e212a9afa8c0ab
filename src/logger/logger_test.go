// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"sync"
	"testing"

	"github.com/H0llyW00dzZ/ssllabs-scanner/src/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCLILogger(t *testing.T) {
	tests := []struct {
		name     string
		testFunc func(t *testing.T)
	}{
		{
			name: "Printf",
			testFunc: func(t *testing.T) {
				var buf bytes.Buffer
				log := logger.NewCLILogger()
				log.SetOutput(&buf)

				log.Printf("scan of %s deferred", "example.com")

				assert.Contains(t, buf.String(), "scan of example.com deferred")
			},
		},
		{
			name: "Println",
			testFunc: func(t *testing.T) {
				var buf bytes.Buffer
				log := logger.NewCLILogger()
				log.SetOutput(&buf)

				log.Println("assessment", "READY")

				assert.Contains(t, buf.String(), "assessment READY")
			},
		},
		{
			name: "SetOutput",
			testFunc: func(t *testing.T) {
				var buf1, buf2 bytes.Buffer
				log := logger.NewCLILogger()

				log.SetOutput(&buf1)
				log.Println("first")

				log.SetOutput(&buf2)
				log.Println("second")

				assert.Contains(t, buf1.String(), "first")
				assert.Contains(t, buf2.String(), "second")
				assert.NotContains(t, buf1.String(), "second")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.testFunc(t)
		})
	}
}

func TestJSONLogger(t *testing.T) {
	decode := func(t *testing.T, line string) map[string]any {
		t.Helper()
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(line)), &entry), "failed to parse JSON output %q", line)
		return entry
	}

	tests := []struct {
		name     string
		testFunc func(t *testing.T)
	}{
		{
			name: "Silent",
			testFunc: func(t *testing.T) {
				var buf bytes.Buffer
				log := logger.NewJSONLogger(&buf, true)

				log.Printf("test message: %s", "hello")
				log.Println("another message")

				assert.Equal(t, 0, buf.Len(), "expected no output in silent mode")
			},
		},
		{
			name: "Printf_JSON",
			testFunc: func(t *testing.T) {
				var buf bytes.Buffer
				log := logger.NewJSONLogger(&buf, false)

				log.Printf("poll %d: %s", 2, "IN_PROGRESS")

				entry := decode(t, buf.String())
				assert.Equal(t, "info", entry["level"])
				assert.Equal(t, "poll 2: IN_PROGRESS", entry["message"])
			},
		},
		{
			name: "Println_JSON",
			testFunc: func(t *testing.T) {
				var buf bytes.Buffer
				log := logger.NewJSONLogger(&buf, false)

				log.Println("capacity exhausted")

				entry := decode(t, buf.String())
				assert.Equal(t, "capacity exhausted", entry["message"])
			},
		},
		{
			name: "SetOutput_Nil",
			testFunc: func(t *testing.T) {
				var buf bytes.Buffer
				log := logger.NewJSONLogger(&buf, false)

				log.Println("before")
				log.SetOutput(nil)
				log.Println("after")

				assert.Contains(t, buf.String(), "before")
				assert.NotContains(t, buf.String(), "after")
			},
		},
		{
			name: "NilWriter",
			testFunc: func(t *testing.T) {
				log := logger.NewJSONLogger(nil, false)

				assert.NotPanics(t, func() {
					log.Printf("test")
					log.Println("test")
				})
			},
		},
		{
			name: "SpecialCharacters",
			testFunc: func(t *testing.T) {
				var buf bytes.Buffer
				log := logger.NewJSONLogger(&buf, false)

				input := `body {"errors":[{"message":"x"}]}` + "\n\ttrailer"
				log.Printf("%s", input)

				entry := decode(t, buf.String())
				assert.Equal(t, input, entry["message"])
			},
		},
		{
			name: "ConcurrentUsage",
			testFunc: func(t *testing.T) {
				var buf bytes.Buffer
				log := logger.NewJSONLogger(&buf, false)

				const numGoroutines = 50
				const messagesPerGoroutine = 10

				var wg sync.WaitGroup
				wg.Add(numGoroutines)
				for i := range numGoroutines {
					go func(id int) {
						defer wg.Done()
						for j := range messagesPerGoroutine {
							log.Printf("goroutine %d message %d", id, j)
						}
					}(i)
				}
				wg.Wait()

				lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
				require.Len(t, lines, numGoroutines*messagesPerGoroutine)
				for _, line := range lines {
					decode(t, line)
				}
			},
		},
		{
			name: "Discard",
			testFunc: func(t *testing.T) {
				log := logger.Discard()
				assert.NotNil(t, log)
				assert.NotPanics(t, func() { log.Printf("ignored %d", 1) })
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.testFunc(t)
		})
	}
}
