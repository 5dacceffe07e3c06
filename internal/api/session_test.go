package api_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/inwx-ddns/inwx-ddns/internal/api"
	"github.com/inwx-ddns/inwx-ddns/internal/mocks"
	"github.com/inwx-ddns/inwx-ddns/internal/pp"
)

const (
	mockUser = "alice"
	mockPass = "secret"
)

func loginParams() map[string]any {
	return map[string]any{"user": mockUser, "pass": mockPass, "lang": "en"}
}

func updateParams(id api.RecordID, content string) map[string]any {
	return map[string]any{"id": id, "content": content}
}

var (
	success  = api.Response{Code: api.CodeSuccess, Msg: "Command completed successfully"} //nolint:exhaustruct,gochecknoglobals
	authErr  = api.Response{Code: 2200, Msg: "Authentication error"}                      //nolint:exhaustruct,gochecknoglobals
	notFound = api.Response{Code: 2303, Msg: "Object does not exist"}                     //nolint:exhaustruct,gochecknoglobals
)

func expectLoginMessages(m *mocks.MockPP) {
	gomock.InOrder(
		m.EXPECT().Infof(pp.EmojiLogin, "Logging in to INWX as %s . . .", mockUser),
		m.EXPECT().Noticef(pp.EmojiLogin, "Logged in to INWX as %s", mockUser),
	)
}

func TestStateDescribe(t *testing.T) {
	t.Parallel()

	require.Equal(t, "logged out", api.LoggedOut.Describe())
	require.Equal(t, "logged in", api.LoggedIn.Describe())
	require.Equal(t, "unknown", api.State(42).Describe())
}

func TestRecordIDString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "12345", api.RecordID(12345).String())
}

func TestUpdateRecordLogsInOnce(t *testing.T) {
	t.Parallel()

	mockCtrl := gomock.NewController(t)
	mockPP := mocks.NewMockPP(mockCtrl)
	mockRPC := mocks.NewMockRPC(mockCtrl)

	expectLoginMessages(mockPP)
	mockPP.EXPECT().Noticef(pp.EmojiUpdateRecord, "Updated record %s to %s", api.RecordID(1), "1.2.3.5")
	mockPP.EXPECT().Noticef(pp.EmojiUpdateRecord, "Updated record %s to %s", api.RecordID(2), "1.2.3.5")
	gomock.InOrder(
		mockRPC.EXPECT().Call(gomock.Any(), api.MethodLogin, loginParams()).Return(success, nil).Times(1),
		mockRPC.EXPECT().Call(gomock.Any(), api.MethodUpdateRecord, updateParams(1, "1.2.3.5")).Return(success, nil),
		mockRPC.EXPECT().Call(gomock.Any(), api.MethodUpdateRecord, updateParams(2, "1.2.3.5")).Return(success, nil),
	)

	s := api.NewSession(mockRPC, mockUser, mockPass, time.Second)
	require.Equal(t, api.LoggedOut, s.State())
	require.NoError(t, s.UpdateRecord(context.Background(), mockPP, 1, "1.2.3.5"))
	require.Equal(t, api.LoggedIn, s.State())
	require.NoError(t, s.UpdateRecord(context.Background(), mockPP, 2, "1.2.3.5"))
	require.Equal(t, api.LoggedIn, s.State())
}

func TestLoginIsIdempotent(t *testing.T) {
	t.Parallel()

	mockCtrl := gomock.NewController(t)
	mockPP := mocks.NewMockPP(mockCtrl)
	mockRPC := mocks.NewMockRPC(mockCtrl)

	expectLoginMessages(mockPP)
	mockRPC.EXPECT().Call(gomock.Any(), api.MethodLogin, loginParams()).Return(success, nil)

	s := api.NewSession(mockRPC, mockUser, mockPass, time.Second)
	require.NoError(t, s.Login(context.Background(), mockPP))
	require.NoError(t, s.Login(context.Background(), mockPP))
	require.Equal(t, api.LoggedIn, s.State())
}

func TestLoginRejected(t *testing.T) {
	t.Parallel()

	mockCtrl := gomock.NewController(t)
	mockPP := mocks.NewMockPP(mockCtrl)
	mockRPC := mocks.NewMockRPC(mockCtrl)

	gomock.InOrder(
		mockPP.EXPECT().Infof(pp.EmojiLogin, "Logging in to INWX as %s . . .", mockUser),
		mockPP.EXPECT().Errorf(pp.EmojiUserError, "Login error: %s", "Authentication error (code 2200)"),
		mockPP.EXPECT().Hintf(pp.HintLoginFails, gomock.Any()),
	)
	// No update call may follow a rejected login.
	mockRPC.EXPECT().Call(gomock.Any(), api.MethodLogin, loginParams()).Return(authErr, nil)

	s := api.NewSession(mockRPC, mockUser, mockPass, time.Second)
	err := s.UpdateRecord(context.Background(), mockPP, 1, "1.2.3.5")
	require.ErrorIs(t, err, api.ErrAuth)
	require.NotErrorIs(t, err, api.ErrUpdate)
	require.ErrorContains(t, err, "Authentication error (code 2200)")
	require.Equal(t, api.LoggedOut, s.State())
}

func TestLoginTransportFailure(t *testing.T) {
	t.Parallel()

	mockCtrl := gomock.NewController(t)
	mockPP := mocks.NewMockPP(mockCtrl)
	mockRPC := mocks.NewMockRPC(mockCtrl)

	boom := errors.New("connection refused")
	gomock.InOrder(
		mockPP.EXPECT().Infof(pp.EmojiLogin, "Logging in to INWX as %s . . .", mockUser),
		mockPP.EXPECT().Errorf(pp.EmojiError, "Failed to log in: %v", boom),
	)
	mockRPC.EXPECT().Call(gomock.Any(), api.MethodLogin, loginParams()).Return(api.Response{}, boom) //nolint:exhaustruct

	s := api.NewSession(mockRPC, mockUser, mockPass, time.Second)
	err := s.Login(context.Background(), mockPP)
	require.ErrorIs(t, err, api.ErrAuth)
	require.ErrorIs(t, err, boom)
	require.Equal(t, api.LoggedOut, s.State())
}

func TestUpdateRecordRejected(t *testing.T) {
	t.Parallel()

	mockCtrl := gomock.NewController(t)
	mockPP := mocks.NewMockPP(mockCtrl)
	mockRPC := mocks.NewMockRPC(mockCtrl)

	expectLoginMessages(mockPP)
	mockPP.EXPECT().Errorf(pp.EmojiError, "Failed to update record %s: %s", api.RecordID(7), "Object does not exist (code 2303)")
	gomock.InOrder(
		mockRPC.EXPECT().Call(gomock.Any(), api.MethodLogin, loginParams()).Return(success, nil),
		mockRPC.EXPECT().Call(gomock.Any(), api.MethodUpdateRecord, updateParams(7, "1.2.3.5")).Return(notFound, nil),
	)

	s := api.NewSession(mockRPC, mockUser, mockPass, time.Second)
	err := s.UpdateRecord(context.Background(), mockPP, 7, "1.2.3.5")
	require.ErrorIs(t, err, api.ErrUpdate)
	require.NotErrorIs(t, err, api.ErrAuth)
	require.Equal(t, api.LoggedIn, s.State())
}

func TestUpdateRecordTransportFailure(t *testing.T) {
	t.Parallel()

	mockCtrl := gomock.NewController(t)
	mockPP := mocks.NewMockPP(mockCtrl)
	mockRPC := mocks.NewMockRPC(mockCtrl)

	boom := errors.New("timeout")
	expectLoginMessages(mockPP)
	mockPP.EXPECT().Errorf(pp.EmojiError, "Failed to update record %s: %v", api.RecordID(7), boom)
	gomock.InOrder(
		mockRPC.EXPECT().Call(gomock.Any(), api.MethodLogin, loginParams()).Return(success, nil),
		mockRPC.EXPECT().Call(gomock.Any(), api.MethodUpdateRecord, updateParams(7, "1.2.3.5")).
			Return(api.Response{}, boom), //nolint:exhaustruct
	)

	s := api.NewSession(mockRPC, mockUser, mockPass, time.Second)
	err := s.UpdateRecord(context.Background(), mockPP, 7, "1.2.3.5")
	require.ErrorIs(t, err, api.ErrUpdate)
	require.ErrorIs(t, err, boom)
}

func TestCallsAreBoundedByTimeout(t *testing.T) {
	t.Parallel()

	mockCtrl := gomock.NewController(t)
	mockPP := mocks.NewMockPP(mockCtrl)
	mockRPC := mocks.NewMockRPC(mockCtrl)

	expectLoginMessages(mockPP)
	mockRPC.EXPECT().Call(gomock.Any(), api.MethodLogin, loginParams()).
		DoAndReturn(func(ctx context.Context, _ string, _ map[string]any) (api.Response, error) {
			deadline, ok := ctx.Deadline()
			require.True(t, ok)
			require.WithinDuration(t, time.Now().Add(time.Minute), deadline, 5*time.Second)
			return success, nil
		})

	s := api.NewSession(mockRPC, mockUser, mockPass, time.Minute)
	require.NoError(t, s.Login(context.Background(), mockPP))
}

func TestAuthNew(t *testing.T) {
	t.Parallel()

	mockCtrl := gomock.NewController(t)
	mockPP := mocks.NewMockPP(mockCtrl)

	h, ok := api.Auth{Username: mockUser, Password: mockPass, URL: api.OTEURL}.New(mockPP, time.Second)
	require.True(t, ok)
	require.Equal(t, api.LoggedOut, h.State())
}
