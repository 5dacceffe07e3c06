package config_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/inwx-ddns/inwx-ddns/internal/api"
	"github.com/inwx-ddns/inwx-ddns/internal/config"
	"github.com/inwx-ddns/inwx-ddns/internal/file"
	"github.com/inwx-ddns/inwx-ddns/internal/mocks"
	"github.com/inwx-ddns/inwx-ddns/internal/pp"
)

func useMemFS(t *testing.T, files map[string]string) {
	t.Helper()

	fs := afero.NewMemMapFs()
	for path, content := range files {
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o600))
	}

	old := file.FS
	file.FS = fs
	t.Cleanup(func() { file.FS = old })
}

//nolint:paralleltest,funlen // environment vars and file.FS are global
func TestReadAuth(t *testing.T) {
	for name, tc := range map[string]struct {
		username      string
		password      string
		passwordFile  string
		apiURL        string
		files         map[string]string
		ok            bool
		expected      api.Auth
		prepareMockPP func(*mocks.MockPP)
	}{
		"plain": {
			"alice", "secret", "", "", nil, true,
			api.Auth{Username: "alice", Password: "secret", URL: api.LiveURL},
			func(m *mocks.MockPP) {
				m.EXPECT().Infof(pp.EmojiBullet, "Use default %s=%s", config.APIURLKey, api.LiveURL)
			},
		},
		"file": {
			"alice", "", "/run/secrets/inwx", "ote", map[string]string{"/run/secrets/inwx": "secret\n"}, true,
			api.Auth{Username: "alice", Password: "secret", URL: api.OTEURL},
			nil,
		},
		"both-matching": {
			"alice", "secret", "/run/secrets/inwx", "live", map[string]string{"/run/secrets/inwx": " secret "}, true,
			api.Auth{Username: "alice", Password: "secret", URL: api.LiveURL},
			nil,
		},
		"custom-url": {
			"alice", "secret", "", "https://proxy.example/jsonrpc/", nil, true,
			api.Auth{Username: "alice", Password: "secret", URL: "https://proxy.example/jsonrpc/"},
			nil,
		},
		"both-conflicting": {
			"alice", "secret", "/run/secrets/inwx", "", map[string]string{"/run/secrets/inwx": "other"}, false,
			api.Auth{}, //nolint:exhaustruct
			func(m *mocks.MockPP) {
				m.EXPECT().Errorf(pp.EmojiUserError,
					"The value of %s does not match the password found in the file specified by %s; they must be the same",
					config.PasswordKey, config.PasswordFileKey)
			},
		},
		"no-username": {
			"", "secret", "", "", nil, false,
			api.Auth{}, //nolint:exhaustruct
			func(m *mocks.MockPP) {
				m.EXPECT().Errorf(pp.EmojiUserError, "Needs %s", config.UsernameKey)
			},
		},
		"no-password": {
			"alice", "", "", "", nil, false,
			api.Auth{}, //nolint:exhaustruct
			func(m *mocks.MockPP) {
				m.EXPECT().Errorf(pp.EmojiUserError, "Needs either %s or %s", config.PasswordKey, config.PasswordFileKey)
			},
		},
		"empty-file": {
			"alice", "", "/run/secrets/inwx", "", map[string]string{"/run/secrets/inwx": "\n"}, false,
			api.Auth{}, //nolint:exhaustruct
			func(m *mocks.MockPP) {
				m.EXPECT().Errorf(pp.EmojiUserError,
					"The file specified by %s does not contain a password", config.PasswordFileKey)
			},
		},
		"missing-file": {
			"alice", "", "/run/secrets/inwx", "", nil, false,
			api.Auth{}, //nolint:exhaustruct
			func(m *mocks.MockPP) {
				m.EXPECT().Errorf(pp.EmojiUserError, "Failed to read %q: %v", "/run/secrets/inwx", gomock.Any())
			},
		},
		"bad-url": {
			"alice", "secret", "", "staging", nil, false,
			api.Auth{}, //nolint:exhaustruct
			func(m *mocks.MockPP) {
				m.EXPECT().Errorf(pp.EmojiUserError,
					"%s (%q) is neither a URL nor one of \"live\" and \"ote\"", config.APIURLKey, "staging")
			},
		},
	} {
		t.Run(name, func(t *testing.T) {
			store(t, config.UsernameKey, tc.username)
			store(t, config.PasswordKey, tc.password)
			store(t, config.PasswordFileKey, tc.passwordFile)
			store(t, config.APIURLKey, tc.apiURL)
			useMemFS(t, tc.files)

			var field api.Auth
			mockCtrl := gomock.NewController(t)
			mockPP := mocks.NewMockPP(mockCtrl)
			if tc.prepareMockPP != nil {
				tc.prepareMockPP(mockPP)
			}
			require.Equal(t, tc.ok, config.ReadAuth(mockPP, &field))
			require.Equal(t, tc.expected, field)
		})
	}
}
