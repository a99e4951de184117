package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatch(t *testing.T) {
	m := NewManager()

	var got []string
	m.Subscribe(TypeValueChanged, func(e Event) bool {
		got = append(got, "first:"+e.Data.(ValueChangedData).NewValue)
		return false
	})
	m.Subscribe(TypeValueChanged, func(e Event) bool {
		got = append(got, "second")
		return true
	})
	m.Subscribe(TypeValueChanged, func(e Event) bool {
		got = append(got, "third")
		return false
	})

	consumed := m.Dispatch(TypeValueChanged, ValueChangedData{NewValue: "12"})
	assert.True(t, consumed)
	assert.Equal(t, []string{"first:12", "second"}, got)

	assert.False(t, m.Dispatch(TypeSubmit, SubmitData{}))
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "unexpected-input", TypeUnexpectedInput.String())
	assert.Equal(t, "unknown", Type(99).String())
}
