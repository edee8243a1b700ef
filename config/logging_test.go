// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"bytes"
	"strings"
	"testing"
)

func TestLogGroup_GatesByLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogGroup(&Config{Options: Options{LogLevel: int(WarnLevel)}})
	l.SetAllOutput(&buf)

	l.Debugf("debug message")
	l.Tracef("trace message")
	if buf.Len() != 0 {
		t.Errorf("expected Debugf/Tracef to be suppressed at WarnLevel, got %q", buf.String())
	}

	l.Warnf("warn message")
	if !strings.Contains(buf.String(), "warn message") {
		t.Errorf("expected Warnf to log at WarnLevel, got %q", buf.String())
	}
}

func TestLogGroup_DebugfAtDebugLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogGroup(&Config{Options: Options{LogLevel: int(DebugLevel)}})
	l.SetAllOutput(&buf)

	l.Debugf("closure step %d", 3)
	if !strings.Contains(buf.String(), "closure step 3") {
		t.Errorf("expected Debugf to log at DebugLevel, got %q", buf.String())
	}
}

func TestLogGroup_ErrorfAlwaysLogs(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogGroup(&Config{Options: Options{LogLevel: int(ErrLevel)}})
	l.SetAllOutput(&buf)

	l.Errorf("boom")
	if !strings.Contains(buf.String(), "boom") {
		t.Errorf("expected Errorf to log even at ErrLevel, got %q", buf.String())
	}
}
