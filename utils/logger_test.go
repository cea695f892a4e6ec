/*
 * Copyright 2025 filmoteca.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package utils

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, ParseLogLevel("debug"))
	assert.Equal(t, logrus.WarnLevel, ParseLogLevel("WARNING"))
	assert.Equal(t, logrus.ErrorLevel, ParseLogLevel(" error "))
	assert.Equal(t, logrus.InfoLevel, ParseLogLevel("nonsense"))
	assert.Equal(t, logrus.InfoLevel, ParseLogLevel(""))
}

func TestNewLoggerRegistry(t *testing.T) {
	a := NewLogger("TEST-A")
	b := NewLogger("TEST-B")
	assert.NotSame(t, a, b)
	// The same name always yields the same logger instance.
	assert.Same(t, a, NewLogger("TEST-A"))
}

func TestSetAllLoggersLevel(t *testing.T) {
	l := NewLogger("TEST-LEVEL")
	SetAllLoggersLevel(logrus.DebugLevel)
	assert.Equal(t, logrus.DebugLevel, l.GetLevel())
	SetAllLoggersLevel(logrus.InfoLevel)
	assert.Equal(t, logrus.InfoLevel, l.GetLevel())
}

func TestEnvDefaults(t *testing.T) {
	t.Setenv("CATALOG_TEST_STR", "value")
	assert.Equal(t, "value", EnvDefaultString("CATALOG_TEST_STR", "fallback"))
	assert.Equal(t, "fallback", EnvDefaultString("CATALOG_TEST_MISSING", "fallback"))

	t.Setenv("CATALOG_TEST_BOOL", "yes")
	assert.True(t, EnvDefaultBool("CATALOG_TEST_BOOL", false))
	t.Setenv("CATALOG_TEST_BOOL", "off")
	assert.False(t, EnvDefaultBool("CATALOG_TEST_BOOL", true))
	t.Setenv("CATALOG_TEST_BOOL", "maybe")
	assert.True(t, EnvDefaultBool("CATALOG_TEST_BOOL", true))
}
