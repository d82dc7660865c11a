package service_test

import (
	"context"
	"errors"
	"testing"

	"dutchghostwriter/backend/internal/service"
	"dutchghostwriter/backend/internal/service/ai"
	"dutchghostwriter/backend/internal/service/mock"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newAIServiceForTest(t *testing.T, apiKey string) (service.AIService, *mock.MockTextGenerator) {
	t.Helper()
	ctrl := gomock.NewController(t)
	client := mock.NewMockTextGenerator(ctrl)

	settings := service.NewSettingsService(newSettingsRepoStub())
	if apiKey != "" {
		require.NoError(t, settings.SetAPIKey(context.Background(), apiKey))
	}
	return service.NewAIService(client, settings), client
}

func TestAIService_ValidateCredential(t *testing.T) {
	t.Run("explicit key", func(t *testing.T) {
		svc, client := newAIServiceForTest(t, "")
		client.EXPECT().ValidateCredential(gomock.Any(), "sk-candidate").Return(ai.Result{Success: true, Data: "OK"}, nil)

		res, err := svc.ValidateCredential(context.Background(), "sk-candidate")
		require.NoError(t, err)
		require.True(t, res.Success)
	})

	t.Run("masked key falls back to stored", func(t *testing.T) {
		svc, client := newAIServiceForTest(t, "sk-stored-123456")
		client.EXPECT().ValidateCredential(gomock.Any(), "sk-stored-123456").Return(ai.Result{Success: true}, nil)

		_, err := svc.ValidateCredential(context.Background(), "sk-***3456")
		require.NoError(t, err)
	})

	t.Run("no key anywhere", func(t *testing.T) {
		svc, _ := newAIServiceForTest(t, "")

		_, err := svc.ValidateCredential(context.Background(), "")
		require.ErrorIs(t, err, service.ErrCredentialMissing)
	})

	t.Run("transport failure", func(t *testing.T) {
		svc, client := newAIServiceForTest(t, "")
		client.EXPECT().ValidateCredential(gomock.Any(), "k").Return(ai.Result{}, errors.New("dial tcp: refused"))

		_, err := svc.ValidateCredential(context.Background(), "k")
		require.ErrorIs(t, err, service.ErrUpstream)
	})
}

func TestAIService_GenerateText(t *testing.T) {
	t.Run("uses stored key and max length", func(t *testing.T) {
		svc, client := newAIServiceForTest(t, "sk-stored-123456")
		client.EXPECT().GenerateText(gomock.Any(), "sk-stored-123456", "Cats", service.DefaultMaxTextLength).
			Return(ai.Result{Success: true, Data: "Cats sleep."}, nil)

		res, err := svc.GenerateText(context.Background(), "Cats")
		require.NoError(t, err)
		require.Equal(t, "Cats sleep.", res.Data)
	})

	t.Run("missing key makes no call", func(t *testing.T) {
		svc, _ := newAIServiceForTest(t, "")

		_, err := svc.GenerateText(context.Background(), "Cats")
		require.ErrorIs(t, err, service.ErrCredentialMissing)
	})

	t.Run("failed result passes through", func(t *testing.T) {
		svc, client := newAIServiceForTest(t, "k")
		client.EXPECT().GenerateText(gomock.Any(), "k", "Cats", gomock.Any()).Return(ai.Result{Error: "quota exceeded"}, nil)

		res, err := svc.GenerateText(context.Background(), "Cats")
		require.NoError(t, err)
		require.False(t, res.Success)
		require.Equal(t, "quota exceeded", res.Error)
	})
}

func TestAIService_ReviewSentence(t *testing.T) {
	svc, client := newAIServiceForTest(t, "")
	req := ai.ReviewRequest{English: "Hi.", Dutch: "Hoi."}
	client.EXPECT().ReviewSentence(gomock.Any(), "k", req).Return(ai.Result{Success: true, Data: "ok"}, nil)

	res, err := svc.ReviewSentence(context.Background(), "k", req)
	require.NoError(t, err)
	require.Equal(t, "ok", res.Data)

	_, err = svc.ReviewSentence(context.Background(), "", req)
	require.ErrorIs(t, err, service.ErrCredentialMissing)
}

func TestAIService_Presets(t *testing.T) {
	svc, _ := newAIServiceForTest(t, "")
	require.Len(t, svc.Presets(), 5)
}
