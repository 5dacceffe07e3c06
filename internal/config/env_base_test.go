package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/inwx-ddns/inwx-ddns/internal/api"
	"github.com/inwx-ddns/inwx-ddns/internal/config"
	"github.com/inwx-ddns/inwx-ddns/internal/mocks"
	"github.com/inwx-ddns/inwx-ddns/internal/pp"
)

const keyPrefix = "TEST-5C1E0A9F2D7B4E33-"

func set(t *testing.T, key string, set bool, val string) {
	t.Helper()

	if set {
		t.Setenv(key, val)
	} else {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func store(t *testing.T, key string, val string) { t.Helper(); set(t, key, true, val) }
func unset(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		set(t, k, false, "")
	}
}

//nolint:paralleltest // environment vars are global
func TestGetenv(t *testing.T) {
	key := keyPrefix + "VAR"
	for name, tc := range map[string]struct {
		set      bool
		val      string
		expected string
	}{
		"nil":    {false, "", ""},
		"empty":  {true, "", ""},
		"simple": {true, "VAL", "VAL"},
		"space1": {true, "    VAL     ", "VAL"},
		"space2": {true, "     VAL    VAL2 ", "VAL    VAL2"},
	} {
		t.Run(name, func(t *testing.T) {
			set(t, key, tc.set, tc.val)
			require.Equal(t, tc.expected, config.Getenv(key))
		})
	}
}

//nolint:paralleltest // environment vars are global
func TestReadString(t *testing.T) {
	key := keyPrefix + "STRING"
	for name, tc := range map[string]struct {
		set           bool
		val           string
		oldField      string
		newField      string
		prepareMockPP func(*mocks.MockPP)
	}{
		"nil": {
			false, "", "cache.yaml", "cache.yaml",
			func(m *mocks.MockPP) { m.EXPECT().Infof(pp.EmojiBullet, "Use default %s=%s", key, "cache.yaml") },
		},
		"empty": {
			true, "   ", "cache.yaml", "cache.yaml",
			func(m *mocks.MockPP) { m.EXPECT().Infof(pp.EmojiBullet, "Use default %s=%s", key, "cache.yaml") },
		},
		"path": {true, " /data/cache.yaml ", "cache.yaml", "/data/cache.yaml", nil},
	} {
		t.Run(name, func(t *testing.T) {
			set(t, key, tc.set, tc.val)
			field := tc.oldField
			mockCtrl := gomock.NewController(t)
			mockPP := mocks.NewMockPP(mockCtrl)
			if tc.prepareMockPP != nil {
				tc.prepareMockPP(mockPP)
			}
			require.True(t, config.ReadString(mockPP, key, &field))
			require.Equal(t, tc.newField, field)
		})
	}
}

//nolint:paralleltest,funlen // environment vars are global
func TestReadPositiveDuration(t *testing.T) {
	key := keyPrefix + "DURATION"
	for name, tc := range map[string]struct {
		set           bool
		val           string
		oldField      time.Duration
		newField      time.Duration
		ok            bool
		prepareMockPP func(*mocks.MockPP)
	}{
		"nil": {
			false, "", time.Second, time.Second, true,
			func(m *mocks.MockPP) { m.EXPECT().Infof(pp.EmojiBullet, "Use default %s=%v", key, time.Second) },
		},
		"empty": {
			true, "", 5 * time.Second, 5 * time.Second, true,
			func(m *mocks.MockPP) { m.EXPECT().Infof(pp.EmojiBullet, "Use default %s=%v", key, 5*time.Second) },
		},
		"1m": {true, "1m", 0, time.Minute, true, nil},
		"0s": {
			true, "0s", time.Second, time.Second, false,
			func(m *mocks.MockPP) {
				m.EXPECT().Errorf(pp.EmojiUserError, "%s (%v) should be positive", key, time.Duration(0))
			},
		},
		"-1s": {
			true, "-1s", time.Second, time.Second, false,
			func(m *mocks.MockPP) {
				m.EXPECT().Errorf(pp.EmojiUserError, "%s (%v) should be positive", key, -time.Second)
			},
		},
		"illformed": {
			true, "ten seconds", time.Second, time.Second, false,
			func(m *mocks.MockPP) {
				m.EXPECT().Errorf(pp.EmojiUserError, "%s (%q) is not a time duration: %v", key, "ten seconds", gomock.Any())
			},
		},
	} {
		t.Run(name, func(t *testing.T) {
			set(t, key, tc.set, tc.val)
			field := tc.oldField
			mockCtrl := gomock.NewController(t)
			mockPP := mocks.NewMockPP(mockCtrl)
			if tc.prepareMockPP != nil {
				tc.prepareMockPP(mockPP)
			}
			require.Equal(t, tc.ok, config.ReadPositiveDuration(mockPP, key, &field))
			require.Equal(t, tc.newField, field)
		})
	}
}

//nolint:paralleltest,funlen // environment vars are global
func TestReadLinuxID(t *testing.T) {
	key := keyPrefix + "ID"
	for name, tc := range map[string]struct {
		set           bool
		val           string
		oldField      int
		newField      int
		ok            bool
		prepareMockPP func(*mocks.MockPP)
	}{
		"nil": {
			false, "", 1000, 1000, true,
			func(m *mocks.MockPP) { m.EXPECT().Infof(pp.EmojiBullet, "Use default %s=%d", key, 1000) },
		},
		"1001": {true, " 1001 ", 1000, 1001, true, nil},
		"0": {
			true, "0", 1000, 1000, false,
			func(m *mocks.MockPP) { m.EXPECT().Errorf(pp.EmojiUserError, "%s (%d) should not be 0", key, 0) },
		},
		"-1": {
			true, "-1", 1000, 1000, false,
			func(m *mocks.MockPP) { m.EXPECT().Errorf(pp.EmojiUserError, "%s (%d) is negative", key, -1) },
		},
		"word": {
			true, "nobody", 1000, 1000, false,
			func(m *mocks.MockPP) {
				m.EXPECT().Errorf(pp.EmojiUserError, "%s (%q) is not a number: %v", key, "nobody", gomock.Any())
			},
		},
	} {
		t.Run(name, func(t *testing.T) {
			set(t, key, tc.set, tc.val)
			field := tc.oldField
			mockCtrl := gomock.NewController(t)
			mockPP := mocks.NewMockPP(mockCtrl)
			if tc.prepareMockPP != nil {
				tc.prepareMockPP(mockPP)
			}
			require.Equal(t, tc.ok, config.ReadLinuxID(mockPP, key, &field))
			require.Equal(t, tc.newField, field)
		})
	}
}

//nolint:paralleltest,funlen // environment vars are global
func TestReadRecordIDs(t *testing.T) {
	key := keyPrefix + "RECORDS"
	for name, tc := range map[string]struct {
		set           bool
		val           string
		oldField      []api.RecordID
		newField      []api.RecordID
		ok            bool
		prepareMockPP func(*mocks.MockPP)
	}{
		"nil": {
			false, "", nil, nil, true,
			func(m *mocks.MockPP) { m.EXPECT().Infof(pp.EmojiBullet, "Use default %s=%s", key, "(none)") },
		},
		"one":   {true, "12345", nil, []api.RecordID{12345}, true, nil},
		"comma": {true, "3,1,2", nil, []api.RecordID{3, 1, 2}, true, nil},
		"mixed": {true, " 10, 20  30\n40 ", nil, []api.RecordID{10, 20, 30, 40}, true, nil},
		"duplicates": {
			true, "7,8,7", nil, []api.RecordID{7, 8}, true,
			func(m *mocks.MockPP) {
				m.EXPECT().Warningf(pp.EmojiUserWarning,
					"%s contains duplicate record IDs; each record will be updated once", key)
			},
		},
		"zero": {
			true, "1,0", []api.RecordID{9}, []api.RecordID{9}, false,
			func(m *mocks.MockPP) {
				m.EXPECT().Errorf(pp.EmojiUserError, "%s contains %d, which is not a positive record ID", key, int64(0))
			},
		},
		"word": {
			true, "1,www", []api.RecordID{9}, []api.RecordID{9}, false,
			func(m *mocks.MockPP) {
				m.EXPECT().Errorf(pp.EmojiUserError, "%s contains %q, which is not a record ID: %v", key, "www", gomock.Any())
			},
		},
	} {
		t.Run(name, func(t *testing.T) {
			set(t, key, tc.set, tc.val)
			field := tc.oldField
			mockCtrl := gomock.NewController(t)
			mockPP := mocks.NewMockPP(mockCtrl)
			if tc.prepareMockPP != nil {
				tc.prepareMockPP(mockPP)
			}
			require.Equal(t, tc.ok, config.ReadRecordIDs(mockPP, key, &field))
			require.Equal(t, tc.newField, field)
		})
	}
}
