package kvstore

import (
	"errors"
	"fmt"
	"sync"
)

// ErrNotFound is returned by Mem for missing keys, mirroring redis.Nil.
var ErrNotFound = errors.New("kvstore: key not found")

// Mem is an in-process KVStore used in tests and when no redis address is
// configured.
type Mem struct {
	mu     sync.Mutex
	values map[string]string
	lists  map[string][]string
}

func NewMem() *Mem {
	return &Mem{
		values: make(map[string]string),
		lists:  make(map[string][]string),
	}
}

func (m *Mem) Set(key string, value interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = fmt.Sprintf("%v", value)
	return nil
}

func (m *Mem) Get(key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return val, nil
}

func (m *Mem) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	delete(m.lists, key)
	return nil
}

func (m *Mem) LPush(key string, values ...interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, v := range values {
		m.lists[key] = append([]string{fmt.Sprintf("%v", v)}, m.lists[key]...)
	}
	return nil
}

func (m *Mem) RPush(key string, values ...interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, v := range values {
		m.lists[key] = append(m.lists[key], fmt.Sprintf("%v", v))
	}
	return nil
}

func (m *Mem) LPop(key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	list := m.lists[key]
	if len(list) == 0 {
		return "", ErrNotFound
	}
	val := list[0]
	m.lists[key] = list[1:]
	return val, nil
}

func (m *Mem) RPop(key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	list := m.lists[key]
	if len(list) == 0 {
		return "", ErrNotFound
	}
	val := list[len(list)-1]
	m.lists[key] = list[:len(list)-1]
	return val, nil
}

func (m *Mem) LLen(key string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.lists[key])), nil
}

func (m *Mem) LRem(key string, count int64, value interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	want := fmt.Sprintf("%v", value)
	removed := int64(0)
	kept := m.lists[key][:0]
	for _, v := range m.lists[key] {
		if v == want && (count == 0 || removed < count) {
			removed++
			continue
		}
		kept = append(kept, v)
	}
	m.lists[key] = kept
	return nil
}

func (m *Mem) LRange(key string, start, stop int64) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	list := m.lists[key]
	n := int64(len(list))
	if start < 0 {
		start += n
	}
	if stop < 0 {
		stop += n
	}
	if start < 0 {
		start = 0
	}
	if start >= n || stop < start {
		return []string{}, nil
	}
	if stop >= n {
		stop = n - 1
	}
	out := make([]string, stop-start+1)
	copy(out, list[start:stop+1])
	return out, nil
}
