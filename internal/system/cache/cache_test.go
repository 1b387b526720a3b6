/*
 * Copyright (c) 2025-2026, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCacheSetAndGet(t *testing.T) {
	c := NewCache(time.Minute)

	c.Set("leads:all", []string{"a", "b"})
	value, found := c.Get("leads:all")
	assert.True(t, found)
	assert.Equal(t, []string{"a", "b"}, value)
}

func TestCacheMiss(t *testing.T) {
	c := NewCache(time.Minute)

	_, found := c.Get("unknown")
	assert.False(t, found)
}

func TestCacheExpiry(t *testing.T) {
	c := NewCache(20 * time.Millisecond)

	c.Set("key", "value")
	_, found := c.Get("key")
	assert.True(t, found)

	time.Sleep(40 * time.Millisecond)
	_, found = c.Get("key")
	assert.False(t, found, "expired entries must not be served")
}

func TestCacheDelete(t *testing.T) {
	c := NewCache(time.Minute)

	c.Set("key", "value")
	c.Delete("key")
	_, found := c.Get("key")
	assert.False(t, found)
}

func TestCacheClear(t *testing.T) {
	c := NewCache(time.Minute)

	c.Set("one", 1)
	c.Set("two", 2)
	c.Clear()

	_, found := c.Get("one")
	assert.False(t, found)
	_, found = c.Get("two")
	assert.False(t, found)
}
