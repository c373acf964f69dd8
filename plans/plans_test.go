package plans

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/motionkit/motion"
	"github.com/joshuapare/motionkit/motion/transaction"
)

func TestTextAppend_Markers(t *testing.T) {
	buf := &TextBuffer{}
	p := TextAppend{}.NewNamedPerformer(motion.NewTarget("t", buf))

	p.AddPlan(TextAppend{})
	p.RemovePlanNamed("n")
	p.AddNamedPlan(TextAppend{}, "n")

	assert.Equal(t, MarkerAdd+MarkerRemoveNamed+MarkerAddNamed, buf.String())
}

func TestCounter_Steps(t *testing.T) {
	c := &Counters{}
	p := Counter{}.NewNamedPerformer(motion.NewTarget("c", c))

	p.AddNamedPlan(Counter{Step: 5}, "a")
	p.AddNamedPlan(Counter{}, "b")
	p.AddPlan(Counter{Step: -2})
	p.RemovePlanNamed("a")

	assert.Equal(t, Counters{Adds: 7, Removes: 1}, *c)
}

func TestLog_Message(t *testing.T) {
	buf := &TextBuffer{}
	p := Log{}.NewPerformer(motion.NewTarget("t", buf))

	p.AddPlan(Log{Message: "hello "})
	p.AddPlan(Log{})

	assert.Equal(t, "hello "+MarkerAdd, buf.String())
}

func TestLog_IsNotNamed(t *testing.T) {
	var plan motion.Plan = Log{}
	_, ok := plan.(motion.NamedPlan)
	assert.False(t, ok)
}

func TestPerformers_IgnoreWrongTargetType(t *testing.T) {
	target := motion.NewTarget("wrong", 42)

	assert.NotPanics(t, func() {
		TextAppend{}.NewNamedPerformer(target).AddNamedPlan(TextAppend{}, "n")
		Counter{}.NewNamedPerformer(target).RemovePlanNamed("n")
		Log{}.NewPerformer(target).AddPlan(Log{Message: "x"})
	})
}

func TestCopyPlan(t *testing.T) {
	assert.Equal(t, Counter{Step: 4}, motion.Copy(Counter{Step: 4}))
	assert.Equal(t, Log{Message: "m"}, motion.Copy(Log{Message: "m"}))
	assert.Equal(t, TextAppend{}, motion.Copy(TextAppend{}))
}

func TestRegistry(t *testing.T) {
	reg := Registry()
	assert.Equal(t, []string{KindCounter, KindLog, KindTextAppend}, reg.Kinds())

	plan, err := reg.Build(KindCounter, json.RawMessage(`{"step": 3}`))
	require.NoError(t, err)
	assert.Equal(t, Counter{Step: 3}, plan)

	plan, err = reg.Build(KindLog, nil)
	require.NoError(t, err)
	assert.Equal(t, Log{}, plan)

	_, err = reg.Build(KindLog, json.RawMessage(`{"message": 1}`))
	assert.Error(t, err)
}

func TestPlansImplementKindedPlan(t *testing.T) {
	for _, p := range []transaction.KindedPlan{TextAppend{}, Counter{}, Log{}} {
		built, err := Registry().Build(p.PlanKind(), nil)
		require.NoError(t, err)
		assert.Equal(t, p.PerformerKind(), built.PerformerKind())
	}
}

func TestTextBuffer_MarshalJSON(t *testing.T) {
	buf := &TextBuffer{}
	buf.Append(`say "hi"`)
	data, err := json.Marshal(buf)
	require.NoError(t, err)
	assert.Equal(t, `"say \"hi\""`, string(data))
}
