package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestDeleteAccount_RunsStepsInOrder(t *testing.T) {
	postRepo := new(MockPostRepository)
	profileRepo := new(MockProfileRepository)
	userRepo := new(MockUserRepository)
	svc := NewAccountService(postRepo, profileRepo, userRepo)

	var order []string
	postRepo.On("DeleteByUserID", mock.Anything, uint(1)).
		Run(func(mock.Arguments) { order = append(order, "posts") }).Return(nil)
	profileRepo.On("DeleteByUserID", mock.Anything, uint(1)).
		Run(func(mock.Arguments) { order = append(order, "profile") }).Return(nil)
	userRepo.On("Delete", mock.Anything, uint(1)).
		Run(func(mock.Arguments) { order = append(order, "user") }).Return(nil)

	err := svc.DeleteAccount(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, []string{"posts", "profile", "user"}, order)
}

func TestDeleteAccount_StopsAtFirstFailure(t *testing.T) {
	postRepo := new(MockPostRepository)
	profileRepo := new(MockProfileRepository)
	userRepo := new(MockUserRepository)
	svc := NewAccountService(postRepo, profileRepo, userRepo)

	postRepo.On("DeleteByUserID", mock.Anything, uint(1)).Return(nil)
	profileRepo.On("DeleteByUserID", mock.Anything, uint(1)).Return(errors.New("db down"))

	err := svc.DeleteAccount(context.Background(), 1)
	assert.Error(t, err)
	// The user record must survive so the deletion can be retried.
	userRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteAccount_RetryAfterFailureSucceeds(t *testing.T) {
	postRepo := new(MockPostRepository)
	profileRepo := new(MockProfileRepository)
	userRepo := new(MockUserRepository)
	svc := NewAccountService(postRepo, profileRepo, userRepo)

	postRepo.On("DeleteByUserID", mock.Anything, uint(1)).Return(nil)
	profileRepo.On("DeleteByUserID", mock.Anything, uint(1)).Return(errors.New("db down")).Once()
	profileRepo.On("DeleteByUserID", mock.Anything, uint(1)).Return(nil)
	userRepo.On("Delete", mock.Anything, uint(1)).Return(nil)

	assert.Error(t, svc.DeleteAccount(context.Background(), 1))
	assert.NoError(t, svc.DeleteAccount(context.Background(), 1))
	userRepo.AssertNumberOfCalls(t, "Delete", 1)
}
