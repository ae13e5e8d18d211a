package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID(t *testing.T) {
	tests := []struct {
		name string
		data string
		id   uint64
	}{
		{"empty string", "", 0xef46db3751d8e999},
		{"short string", "test", 0x4fdcca5ddb678139},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.id, ID(tt.data))
		})
	}
}

func TestColumnID(t *testing.T) {
	t.Run("single label matches ID", func(t *testing.T) {
		require.Equal(t, ID("CO2_CONC"), ColumnID("CO2_CONC"))
	})

	t.Run("order matters", func(t *testing.T) {
		require.NotEqual(t, ColumnID("CO2", "SET"), ColumnID("SET", "CO2"))
	})

	t.Run("separator prevents concatenation clashes", func(t *testing.T) {
		require.NotEqual(t, ColumnID("CO2", "I"), ColumnID("CO2I", ""))
	})

	t.Run("deterministic", func(t *testing.T) {
		a := ColumnID("CO2I", "SET", "GtC", "WORLD")
		b := ColumnID("CO2I", "SET", "GtC", "WORLD")
		require.Equal(t, a, b)
	})
}

func TestDigest(t *testing.T) {
	d1 := NewDigest()
	d1.WriteString("WORLD")
	d1.WriteUint64(42)

	d2 := NewDigest()
	d2.WriteString("WORLD")
	d2.WriteUint64(42)
	require.Equal(t, d1.Sum64(), d2.Sum64())

	d2.WriteUint64(1)
	require.NotEqual(t, d1.Sum64(), d2.Sum64())
}

func BenchmarkColumnID(b *testing.B) {
	for b.Loop() {
		ColumnID("HFC4310", "SET", "kt", "R5ASIA")
	}
}
