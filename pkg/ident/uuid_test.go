package ident

import (
	"sort"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUUID(t *testing.T) {
	t.Run("generates valid non-zero UUID", func(t *testing.T) {
		u := NewUUID()
		assert.False(t, u.IsZero())
		assert.Len(t, u.String(), 36) // Standard UUID format
	})

	t.Run("generates unique UUIDs", func(t *testing.T) {
		u1 := NewUUID()
		u2 := NewUUID()
		assert.False(t, u1.Equal(u2))
	})
}

func TestMustParseUUID(t *testing.T) {
	t.Run("parses valid UUID", func(t *testing.T) {
		u := MustParseUUID("550e8400-e29b-41d4-a716-446655440000")
		assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", u.String())
	})

	t.Run("panics on invalid UUID", func(t *testing.T) {
		assert.Panics(t, func() {
			MustParseUUID("not-a-uuid")
		})
	})

	t.Run("panics on empty UUID", func(t *testing.T) {
		assert.Panics(t, func() {
			MustParseUUID("")
		})
	})
}

func TestParseUUID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "valid UUID with hyphens",
			input: "550e8400-e29b-41d4-a716-446655440000",
			want:  "550e8400-e29b-41d4-a716-446655440000",
		},
		{
			name:  "valid UUID uppercase",
			input: "550E8400-E29B-41D4-A716-446655440000",
			want:  "550e8400-e29b-41d4-a716-446655440000", // Normalized to lowercase
		},
		{
			name:  "valid UUID without hyphens",
			input: "550e8400e29b41d4a716446655440000",
			want:  "550e8400-e29b-41d4-a716-446655440000", // Normalized with hyphens
		},
		{
			name:    "invalid UUID format",
			input:   "not-a-uuid",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
		{
			name:    "invalid characters",
			input:   "550e8400-e29b-41d4-a716-44665544000g",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := ParseUUID(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, u.String())
		})
	}
}

func TestUUID_IsZero(t *testing.T) {
	t.Run("zero UUID", func(t *testing.T) {
		var u UUID
		assert.True(t, u.IsZero())
	})

	t.Run("parsed nil UUID", func(t *testing.T) {
		u, err := ParseUUID(uuid.Nil.String())
		require.NoError(t, err)
		assert.True(t, u.IsZero())
	})
}

func TestUUID_Compare(t *testing.T) {
	a := MustParseUUID("0a000000-0000-4000-8000-000000000000")
	b := MustParseUUID("b0000000-0000-4000-8000-000000000000")
	c := MustParseUUID("C0000000-0000-4000-8000-000000000000")

	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, c.Compare(b))
	assert.Equal(t, 0, a.Compare(MustParseUUID(a.String())))

	t.Run("sorts like byte values", func(t *testing.T) {
		ids := []UUID{c, a, b}
		sort.Slice(ids, func(i, j int) bool { return ids[i].Compare(ids[j]) < 0 })
		assert.Equal(t, []UUID{a, b, c}, ids)
	})
}

func TestUUID_Text(t *testing.T) {
	t.Run("marshal", func(t *testing.T) {
		u := MustParseUUID("550e8400-e29b-41d4-a716-446655440000")
		data, err := u.MarshalText()
		require.NoError(t, err)
		assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", string(data))
	})

	t.Run("unmarshal", func(t *testing.T) {
		var u UUID
		require.NoError(t, u.UnmarshalText([]byte("550E8400-E29B-41D4-A716-446655440000")))
		assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", u.String())
	})

	t.Run("unmarshal invalid", func(t *testing.T) {
		var u UUID
		assert.Error(t, u.UnmarshalText([]byte("nope")))
		assert.True(t, u.IsZero())
	})
}

// TestUUID_Integration tests UUID with actual uuid.UUID behavior.
func TestUUID_Integration(t *testing.T) {
	t.Run("wraps google uuid correctly", func(t *testing.T) {
		googleUUID := uuid.New()

		ourUUID, err := ParseUUID(googleUUID.String())
		require.NoError(t, err)

		assert.Equal(t, googleUUID.String(), ourUUID.String())
	})
}

// BenchmarkUUID_Parse benchmarks UUID parsing performance.
func BenchmarkUUID_Parse(b *testing.B) {
	uuidStr := "550e8400-e29b-41d4-a716-446655440000"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ParseUUID(uuidStr)
	}
}
