package storage

import "testing"

func TestMemoryStore(t *testing.T) {
	m := NewMemoryStore()

	if v, err := m.LoadHighScore(1); err != nil || v != 0 {
		t.Fatalf("Expected empty record, got %d, %v", v, err)
	}

	m.SaveHighScore(1, 900)
	m.SaveHighScore(7, 5)

	if v, _ := m.LoadHighScore(1); v != 900 {
		t.Errorf("Expected 900, got %d", v)
	}
	if v, _ := m.LoadHighScore(7); v != 5 {
		t.Errorf("Expected 5, got %d", v)
	}
}
