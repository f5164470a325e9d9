package ports_test

import (
	"testing"

	"github.com/Muhamedyehya/aqar-admin/internal/mocks"
	authmocks "github.com/Muhamedyehya/aqar-admin/internal/mocks/auth"
	"github.com/Muhamedyehya/aqar-admin/internal/ports"
)

// This test only verifies that our mocks conform to the ports at compile time.
func TestMocksImplementPorts(t *testing.T) {
	t.Helper()

	var _ ports.SessionStore = (*authmocks.MemorySessionStore)(nil)
	var _ ports.TokenDecoder = authmocks.StaticTokenDecoder{}
	var _ ports.AuthGateway = (*mocks.MockAuthGateway)(nil)
	var _ ports.AdsGateway = (*mocks.MockAdsGateway)(nil)
	var _ ports.SettingsGateway = (*mocks.MockSettingsGateway)(nil)
	var _ ports.Uploader = (*mocks.MockUploader)(nil)
}
