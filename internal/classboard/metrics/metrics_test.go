package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCollectors(t *testing.T) {
	before := testutil.ToFloat64(widgetsCreated.WithLabelValues("dice"))
	RecordWidgetCreated("dice")
	assert.Equal(t, before+1, testutil.ToFloat64(widgetsCreated.WithLabelValues("dice")))

	before = testutil.ToFloat64(storeFailures.WithLabelValues("set"))
	RecordStoreFailure("set")
	assert.Equal(t, before+1, testutil.ToFloat64(storeFailures.WithLabelValues("set")))

	RecordTimerEvent("expired")
	assert.GreaterOrEqual(t, testutil.ToFloat64(timerEvents.WithLabelValues("expired")), 1.0)

	SetActiveTimers(3)
	assert.Equal(t, 3.0, testutil.ToFloat64(activeTimers))
}
