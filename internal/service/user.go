package service

import (
	"context"
	"errors"
	"strings"
	"time"

	v1 "avdportal/api/v1"
	"avdportal/internal/lifecycle"
	"avdportal/internal/model"
	"avdportal/internal/repository"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type UserService interface {
	// Login 返回访问令牌；client 只需携带 IP 和 UA
	Login(ctx context.Context, client model.Actor, req *v1.LoginRequest) (string, error)
	Logout(ctx context.Context, actor model.Actor) error
	GetProfile(ctx context.Context, userId string) (*v1.GetProfileResponseData, error)
	UpdateProfile(ctx context.Context, actor model.Actor, req *v1.UpdateProfileRequest) error
}

func NewUserService(
	service *Service,
	userRepo repository.UserRepository,
	audit AuditLogService,
) UserService {
	return &userService{
		Service:  service,
		userRepo: userRepo,
		audit:    audit,
	}
}

type userService struct {
	*Service
	userRepo repository.UserRepository
	audit    AuditLogService
}

func (s *userService) Login(ctx context.Context, client model.Actor, req *v1.LoginRequest) (string, error) {
	var (
		user *model.User
		err  error
	)
	// 支持用户名或邮箱登录
	if strings.Contains(req.Account, "@") {
		user, err = s.userRepo.GetByEmail(ctx, req.Account)
	} else {
		user, err = s.userRepo.GetByUsername(ctx, req.Account)
	}
	if err != nil {
		s.logger.WithContext(ctx).Error("userRepo lookup error", zap.Error(err))
		return "", v1.ErrInternalServerError
	}
	if user == nil {
		return "", v1.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return "", v1.ErrUnauthorized
	}
	if !user.IsActive {
		return "", v1.ErrAccountDisabled
	}

	token, err := s.jwt.GenToken(user.UserId, user.DisplayName(), time.Time{})
	if err != nil {
		s.logger.WithContext(ctx).Error("jwt.GenToken error", zap.Error(err))
		return "", v1.ErrInternalServerError
	}

	actor := client
	actor.AdminID = user.UserId
	actor.Name = user.DisplayName()
	_ = s.audit.Record(ctx, actor, lifecycle.AuditEvent{
		Action:     model.AuditActionLogin,
		EntityType: model.EntityTypeUser,
		EntityID:   user.UserId,
		EntityName: user.Username,
	})
	return token, nil
}

// Logout 令牌无状态，仅记录审计
func (s *userService) Logout(ctx context.Context, actor model.Actor) error {
	_ = s.audit.Record(ctx, actor, lifecycle.AuditEvent{
		Action:     model.AuditActionLogout,
		EntityType: model.EntityTypeUser,
		EntityID:   actor.AdminID,
		EntityName: actor.Name,
	})
	return nil
}

func (s *userService) GetProfile(ctx context.Context, userId string) (*v1.GetProfileResponseData, error) {
	user, err := s.userRepo.GetByID(ctx, userId)
	if err != nil {
		if errors.Is(err, v1.ErrNotFound) {
			return nil, v1.ErrNotFound
		}
		s.logger.WithContext(ctx).Error("userRepo.GetByID error", zap.Error(err))
		return nil, v1.ErrInternalServerError
	}
	return &v1.GetProfileResponseData{
		UserId:   user.UserId,
		Username: user.Username,
		Email:    user.Email,
		Nickname: user.Nickname,
	}, nil
}

func (s *userService) UpdateProfile(ctx context.Context, actor model.Actor, req *v1.UpdateProfileRequest) error {
	user, err := s.userRepo.GetByID(ctx, actor.AdminID)
	if err != nil {
		if errors.Is(err, v1.ErrNotFound) {
			return v1.ErrNotFound
		}
		s.logger.WithContext(ctx).Error("userRepo.GetByID error", zap.Error(err))
		return v1.ErrInternalServerError
	}

	details := model.NewPayload()
	if req.Nickname != "" && req.Nickname != user.Nickname {
		details.Set("nickname", model.MapValue(model.NewPayload().
			Set("old", model.StringValue(user.Nickname)).
			Set("new", model.StringValue(req.Nickname))))
		user.Nickname = req.Nickname
	}

	// 修改密码需要同时提供旧密码和新密码
	if req.OldPassword != "" || req.NewPassword != "" {
		if req.OldPassword == "" || req.NewPassword == "" {
			return v1.ErrBadRequest
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.OldPassword)); err != nil {
			return v1.ErrWrongPassword
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			s.logger.WithContext(ctx).Error("bcrypt.GenerateFromPassword error", zap.Error(err))
			return v1.ErrInternalServerError
		}
		user.Password = string(hashed)
		details.Set("password", model.StringValue("changed"))
	}

	if details.Len() == 0 {
		return nil
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		s.logger.WithContext(ctx).Error("userRepo.Update error", zap.Error(err))
		return v1.ErrInternalServerError
	}
	_ = s.audit.Record(ctx, actor, lifecycle.AuditEvent{
		Action:     model.AuditAction(model.EntityTypeUser, "UPDATED"),
		EntityType: model.EntityTypeUser,
		EntityID:   user.UserId,
		EntityName: user.Username,
		Details:    details,
	})
	return nil
}
