package requirement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSession struct {
	iface, mon, target, capture, hash, handshake string
}

func (f fakeSession) Interface() string        { return f.iface }
func (f fakeSession) MonitorInterface() string { return f.mon }
func (f fakeSession) Target() string           { return f.target }
func (f fakeSession) CaptureFile() string      { return f.capture }
func (f fakeSession) HashFile() string         { return f.hash }
func (f fakeSession) HandshakeFile() string    { return f.handshake }

func TestRequirementsUnknownAction(t *testing.T) {
	_, ok := Requirements("not_a_real_action", fakeSession{})
	assert.False(t, ok)
}

func TestRequirementsScanQuickHasTargetAndTool(t *testing.T) {
	reqs, ok := Requirements("scan_quick", fakeSession{target: "10.0.0.1"})
	require.True(t, ok)
	require.NotEmpty(t, reqs)

	var sawTarget, sawTool bool
	for _, r := range reqs {
		if r.Name == "target_selected" {
			sawTarget = true
			assert.True(t, r.Check())
		}
		if r.Kind == KindTool {
			sawTool = true
		}
	}
	assert.True(t, sawTarget)
	assert.True(t, sawTool)
}

func TestInterfaceReqReflectsSession(t *testing.T) {
	unset := interfaceReq(fakeSession{})
	assert.False(t, unset.Check())

	set := interfaceReq(fakeSession{iface: "wlan0"})
	assert.True(t, set.Check())
}

func TestPreflightResultSummaryAllMet(t *testing.T) {
	r := PreflightResult{Action: "scan", AllMet: true}
	assert.Equal(t, "All requirements met for scan", r.Summary())
	assert.True(t, r.CanProceed())
	assert.False(t, r.NeedsUserAction())
}

func TestPreflightResultCanAutoFixRequiresNoManual(t *testing.T) {
	r := PreflightResult{
		Action:  "scan",
		Fixable: []Requirement{{Name: "a"}},
		Manual:  []Requirement{{Name: "b"}},
	}
	assert.False(t, r.CanAutoFix())
	assert.True(t, r.NeedsUserAction())
}

func TestPreflightResultCanAutoFixTrue(t *testing.T) {
	r := PreflightResult{
		Action:  "scan",
		Fixable: []Requirement{{Name: "a"}},
	}
	assert.True(t, r.CanAutoFix())
}

func TestListActionsNonEmpty(t *testing.T) {
	actions := ListActions(fakeSession{})
	assert.NotEmpty(t, actions)
}
