package provisioning

import (
	"context"
	"fmt"
	"testing"

	"github.com/imamik/hrdeploy/internal/config"
	platformaws "github.com/imamik/hrdeploy/internal/platform/aws"
)

// testObserver records events and progress lines for assertions.
type testObserver struct {
	events []Event
	lines  []string
}

func (o *testObserver) Printf(format string, v ...interface{}) {
	o.lines = append(o.lines, fmt.Sprintf(format, v...))
}

func (o *testObserver) Event(e Event) {
	o.events = append(o.events, e)
}

func (o *testObserver) eventTypes() []EventType {
	types := make([]EventType, 0, len(o.events))
	for _, e := range o.events {
		types = append(types, e.Type)
	}
	return types
}

func newTestContext(t *testing.T, mock *platformaws.MockClient) (*Context, *testObserver) {
	t.Helper()
	obs := &testObserver{}
	return &Context{
		Context:  context.Background(),
		Config:   config.Default(),
		State:    NewState(),
		Cloud:    mock,
		Observer: obs,
		Timeouts: config.LoadTimeouts(),
	}, obs
}
