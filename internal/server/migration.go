package server

import (
	"context"
	"os"

	"avdportal/internal/model"
	"avdportal/internal/repository"
	"avdportal/pkg/log"
	"avdportal/pkg/sid"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type MigrateServer struct {
	db       *gorm.DB
	log      *log.Logger
	conf     *viper.Viper
	userRepo repository.UserRepository
	sid      *sid.Sid
	// exit 迁移完成后退出进程，测试中关闭
	exit bool
}

func NewMigrateServer(db *gorm.DB, log *log.Logger, conf *viper.Viper, userRepo repository.UserRepository, sid *sid.Sid) *MigrateServer {
	return &MigrateServer{
		db:       db,
		log:      log,
		conf:     conf,
		userRepo: userRepo,
		sid:      sid,
		exit:     true,
	}
}

// Models 需要迁移的全部表
func Models() []interface{} {
	return []interface{}{
		&model.User{},
		// 基础数据
		&model.BusinessUnit{},
		&model.Contact{},
		&model.Application{},
		&model.BaseImage{},
		// 模板与挂载应用
		&model.Template{},
		&model.TemplateApplication{},
		// 变更日志与审计日志
		&model.TemplateHistory{},
		&model.AuditLog{},
	}
}

func (m *MigrateServer) Start(ctx context.Context) error {
	if err := m.Migrate(ctx); err != nil {
		return err
	}
	if m.exit {
		os.Exit(0)
	}
	return nil
}

// Migrate 建表并写入默认管理员
func (m *MigrateServer) Migrate(ctx context.Context) error {
	if err := m.db.WithContext(ctx).AutoMigrate(Models()...); err != nil {
		m.log.Error("migrate error", zap.Error(err))
		return err
	}
	m.log.Info("AutoMigrate success")

	if err := m.createDefaultUser(ctx); err != nil {
		m.log.Error("create default user error", zap.Error(err))
		return err
	}
	return nil
}

// createDefaultUser 创建默认管理员用户
func (m *MigrateServer) createDefaultUser(ctx context.Context) error {
	defaultUsername := m.confOr("admin.username", "admin")
	defaultEmail := m.confOr("admin.email", "admin@avdportal.local")
	defaultPassword := m.confOr("admin.password", "Ab123456")
	defaultNickname := m.confOr("admin.nickname", "AVD Portal Admin")

	// 通过邮箱或用户名判断是否已存在
	existingUser, err := m.userRepo.GetByEmail(ctx, defaultEmail)
	if err != nil {
		m.log.Error("check default user error", zap.Error(err))
		return err
	}
	if existingUser != nil {
		m.log.Info("default user already exists", zap.String("email", defaultEmail))
		return nil
	}
	existingUser, err = m.userRepo.GetByUsername(ctx, defaultUsername)
	if err != nil {
		m.log.Error("check default username error", zap.Error(err))
		return err
	}
	if existingUser != nil {
		m.log.Info("default username already exists", zap.String("username", defaultUsername))
		return nil
	}

	userId, err := m.sid.GenString()
	if err != nil {
		m.log.Error("generate user id error", zap.Error(err))
		return err
	}
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(defaultPassword), bcrypt.DefaultCost)
	if err != nil {
		m.log.Error("hash password error", zap.Error(err))
		return err
	}

	user := &model.User{
		UserId:   userId,
		Username: defaultUsername,
		Email:    defaultEmail,
		Password: string(hashedPassword),
		Nickname: defaultNickname,
		IsActive: true,
	}
	if err := m.userRepo.Create(ctx, user); err != nil {
		m.log.Error("create default user error", zap.Error(err))
		return err
	}

	m.log.Info("default user created successfully",
		zap.String("username", defaultUsername),
		zap.String("email", defaultEmail),
		zap.String("userId", userId))
	return nil
}

func (m *MigrateServer) confOr(key, def string) string {
	if m.conf != nil {
		if v := m.conf.GetString(key); v != "" {
			return v
		}
	}
	return def
}

func (m *MigrateServer) Stop(ctx context.Context) error {
	m.log.Info("AutoMigrate stop")
	return nil
}
