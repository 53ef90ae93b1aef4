package cli

import (
	"errors"
	"reflect"
	"testing"

	"github.com/playwright-community/playwright-go"
	"go.uber.org/zap/zaptest"
)

func TestRunInstall(t *testing.T) {
	tests := []struct {
		name       string
		browsers   []string
		installErr error
		wantErr    bool
	}{
		{name: "single browser", browsers: []string{"chromium"}},
		{name: "all browsers", browsers: nil},
		{name: "install fails", browsers: []string{"webkit"}, installErr: errors.New("network down"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got *playwright.RunOptions
			install := func(opts ...*playwright.RunOptions) error {
				if len(opts) > 0 {
					got = opts[0]
				}
				return tt.installErr
			}

			err := RunInstall(install, tt.browsers, zaptest.NewLogger(t))

			if (err != nil) != tt.wantErr {
				t.Fatalf("RunInstall() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, tt.installErr) {
				t.Errorf("expected wrapped install error, got %v", err)
			}
			if got == nil || !reflect.DeepEqual(got.Browsers, tt.browsers) {
				t.Errorf("expected browsers %v passed to installer, got %+v", tt.browsers, got)
			}
		})
	}
}
