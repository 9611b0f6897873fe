package integrity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeHash_Deterministic(t *testing.T) {
	fields := []Field{
		{Name: "Name", Value: "FY2026"},
		{Name: "Status", Value: "open"},
	}

	first := ComputeHash(fields)
	require.NotEmpty(t, first)
	for range 10 {
		assert.Equal(t, first, ComputeHash(fields))
	}
}

func TestComputeHash_SensitiveToContent(t *testing.T) {
	base := []Field{{Name: "Name", Value: "FY2026"}, {Name: "Status", Value: "open"}}

	t.Run("value change", func(t *testing.T) {
		changed := []Field{{Name: "Name", Value: "FY2027"}, {Name: "Status", Value: "open"}}
		assert.NotEqual(t, ComputeHash(base), ComputeHash(changed))
	})

	t.Run("field order", func(t *testing.T) {
		reordered := []Field{{Name: "Status", Value: "open"}, {Name: "Name", Value: "FY2026"}}
		assert.NotEqual(t, ComputeHash(base), ComputeHash(reordered))
	})

	// Length prefixing keeps adjacent fields from colliding when characters
	// shift across the boundary.
	t.Run("boundary shift", func(t *testing.T) {
		a := []Field{{Name: "Name", Value: "ab"}, {Name: "Status", Value: "c"}}
		b := []Field{{Name: "Name", Value: "a"}, {Name: "Status", Value: "bc"}}
		assert.NotEqual(t, ComputeHash(a), ComputeHash(b))
	})
}

type fakeEntity struct {
	id     string
	kind   string
	fields []Field
	note   string // non-hashed metadata
	record Record
}

func (f *fakeEntity) EntityID() string         { return f.id }
func (f *fakeEntity) EntityKind() string       { return f.kind }
func (f *fakeEntity) HashableContent() []Field { return f.fields }
func (f *fakeEntity) Integrity() *Record       { return &f.record }

func TestStamp(t *testing.T) {
	entity := &fakeEntity{
		id:     "per-1",
		kind:   "period",
		fields: []Field{{Name: "Name", Value: "FY2026"}},
	}

	Stamp(entity)

	assert.Equal(t, ComputeHash(entity.fields), entity.record.Hash)
	assert.Equal(t, StatusValid, entity.record.Status)
}

func TestStamp_KeepsExistingStatus(t *testing.T) {
	entity := &fakeEntity{
		id:     "per-1",
		kind:   "period",
		fields: []Field{{Name: "Name", Value: "FY2026"}},
		record: Record{Status: StatusWarning, WarningDetails: "divergence"},
	}

	Stamp(entity)

	assert.Equal(t, StatusWarning, entity.record.Status, "stamping refreshes the hash, not the status")
}
