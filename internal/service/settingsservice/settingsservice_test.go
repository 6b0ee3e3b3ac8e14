package settingsservice

import (
	"context"
	"errors"
	"testing"

	"github.com/fixora/adminapi/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	settingsRepo := NewMockRepo(ctrl)
	service := New(settingsRepo)
	return service, settingsRepo
}

func TestGet(t *testing.T) {
	stored := &domain.Settings{
		App: domain.SettingGroup{"maintenance_mode": domain.BoolSetting(false)},
	}
	tests := []struct {
		name    string
		stored  *domain.Settings
		repoErr error
		want    *domain.Settings
		wantErr bool
	}{
		{name: "Stored", stored: stored, want: stored},
		{name: "NothingSavedYet", stored: nil, want: domain.EmptySettings()},
		{name: "RepoError", repoErr: errors.New("query failed"), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, settingsRepo := NewMock(t)
			ctx := context.Background()

			settingsRepo.EXPECT().Get(gomock.Any()).Return(tt.stored, tt.repoErr)

			got, err := service.Get(ctx)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestSave(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
		wantErr bool
	}{
		{name: "Success"},
		{name: "RepoError", repoErr: errors.New("upsert failed"), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, settingsRepo := NewMock(t)
			ctx := context.Background()

			submitted := &domain.Settings{
				General: domain.SettingGroup{"support_email": domain.StringSetting("help@fixora.app")},
				Payment: domain.SettingGroup{"commission_rate": domain.NumberSetting(12.5)},
			}
			if tt.repoErr != nil {
				settingsRepo.EXPECT().Upsert(gomock.Any(), submitted).Return(nil, tt.repoErr)
			} else {
				settingsRepo.EXPECT().Upsert(gomock.Any(), submitted).Return(submitted, nil)
			}

			saved, err := service.Save(ctx, submitted)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, saved)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, submitted, saved)
			}
		})
	}
}
