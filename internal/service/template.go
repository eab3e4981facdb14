package service

import (
	"context"
	"time"

	v1 "avdportal/api/v1"
	"avdportal/internal/lifecycle"
	"avdportal/internal/model"
	"avdportal/internal/repository"
	"avdportal/pkg/metrics"

	"go.uber.org/zap"
)

type TemplateService interface {
	CreateTemplate(ctx context.Context, actor model.Actor, req *v1.CreateTemplateRequest) (*v1.TemplateDetail, error)
	GetTemplate(ctx context.Context, id int64) (*v1.TemplateDetail, error)
	ListTemplates(ctx context.Context, req *v1.ListTemplateRequest) (*v1.ListTemplateResponseData, error)
	UpdateTemplate(ctx context.Context, actor model.Actor, id int64, req *v1.UpdateTemplateRequest) (*v1.TemplateDetail, error)
	DeleteTemplate(ctx context.Context, actor model.Actor, id int64) error

	// 状态流转
	UpdateStatus(ctx context.Context, actor model.Actor, id int64, req *v1.UpdateTemplateStatusRequest) (*v1.TemplateDetail, error)
	ListTransitions(ctx context.Context, id int64) (*v1.ListTransitionsResponseData, error)
}

func NewTemplateService(
	service *Service,
	templateRepo repository.TemplateRepository,
	templateAppRepo repository.TemplateApplicationRepository,
	historyRepo repository.TemplateHistoryRepository,
	businessUnitRepo repository.BusinessUnitRepository,
	contactRepo repository.ContactRepository,
	baseImageRepo repository.BaseImageRepository,
	history TemplateHistoryService,
	audit AuditLogService,
	m *metrics.Metrics,
) TemplateService {
	return &templateService{
		Service:          service,
		templateRepo:     templateRepo,
		templateAppRepo:  templateAppRepo,
		historyRepo:      historyRepo,
		businessUnitRepo: businessUnitRepo,
		contactRepo:      contactRepo,
		baseImageRepo:    baseImageRepo,
		history:          history,
		audit:            audit,
		metrics:          m,
		now:              time.Now,
	}
}

type templateService struct {
	*Service
	templateRepo     repository.TemplateRepository
	templateAppRepo  repository.TemplateApplicationRepository
	historyRepo      repository.TemplateHistoryRepository
	businessUnitRepo repository.BusinessUnitRepository
	contactRepo      repository.ContactRepository
	baseImageRepo    repository.BaseImageRepository
	history          TemplateHistoryService
	audit            AuditLogService
	metrics          *metrics.Metrics
	now              func() time.Time
}

func (s *templateService) CreateTemplate(ctx context.Context, actor model.Actor, req *v1.CreateTemplateRequest) (*v1.TemplateDetail, error) {
	if !containsString(req.Regions, req.PrimaryRegion) {
		return nil, v1.ErrPrimaryRegionNotInList
	}
	if err := s.checkReferences(ctx, req.BusinessUnitID, req.ContactID, req.BaseImageID); err != nil {
		return nil, err
	}

	existing, err := s.templateRepo.GetByName(ctx, req.Name)
	if err != nil {
		s.logger.WithContext(ctx).Error("templateRepo.GetByName error", zap.Error(err))
		return nil, v1.ErrInternalServerError
	}
	if existing != nil {
		return nil, v1.ErrTemplateNameInUse
	}

	now := s.now()
	tpl := &model.Template{
		Name:             req.Name,
		Description:      req.Description,
		Status:           lifecycle.InitialStatus,
		Environment:      model.Environment(req.Environment),
		RequestDate:      &now,
		BusinessUnitID:   req.BusinessUnitID,
		ContactID:        req.ContactID,
		ContactName:      req.ContactName,
		ContactEmail:     req.ContactEmail,
		ContactPhone:     req.ContactPhone,
		NamingPrefix:     req.NamingPrefix,
		NamingPattern:    req.NamingPattern,
		HostPoolType:     model.HostPoolType(req.HostPoolType),
		LoadBalancerType: model.LoadBalancerType(req.LoadBalancerType),
		MaxSessionLimit:  req.MaxSessionLimit,
		Regions:          append([]string(nil), req.Regions...),
		PrimaryRegion:    req.PrimaryRegion,
		BaseImageID:      req.BaseImageID,
		Tags:             req.Tags,
		CreatedById:      actor.AdminID,
		UpdatedById:      actor.AdminID,
	}
	if err := s.templateRepo.Create(ctx, tpl); err != nil {
		if repository.IsDuplicateKey(err) {
			return nil, v1.ErrTemplateNameInUse
		}
		s.logger.WithContext(ctx).Error("templateRepo.Create error", zap.Error(err))
		return nil, v1.ErrInternalServerError
	}

	snapshot := templateSnapshot(tpl)
	_ = s.history.Append(ctx, actor, lifecycle.HistoryEvent{
		TemplateID: tpl.Id,
		Action:     model.HistoryActionCreated,
		Changes:    snapshot,
	})
	_ = s.audit.Record(ctx, actor, lifecycle.AuditEvent{
		Action:     model.AuditAction(model.EntityTypeTemplate, "CREATED"),
		EntityType: model.EntityTypeTemplate,
		EntityID:   idString(tpl.Id),
		EntityName: tpl.Name,
		NewValue:   snapshot,
	})

	return s.buildDetail(ctx, tpl)
}

func (s *templateService) GetTemplate(ctx context.Context, id int64) (*v1.TemplateDetail, error) {
	tpl, err := s.getTemplate(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.buildDetail(ctx, tpl)
}

func (s *templateService) ListTemplates(ctx context.Context, req *v1.ListTemplateRequest) (*v1.ListTemplateResponseData, error) {
	page, pageSize := normalizePage(req.Page, req.PageSize)
	tpls, total, err := s.templateRepo.ListWithPagination(ctx, repository.TemplateFilter{
		Page:           page,
		PageSize:       pageSize,
		Status:         req.Status,
		Environment:    req.Environment,
		BusinessUnitID: req.BusinessUnitID,
		Keyword:        req.Keyword,
	})
	if err != nil {
		s.logger.WithContext(ctx).Error("templateRepo.ListWithPagination error", zap.Error(err))
		return nil, v1.ErrInternalServerError
	}

	// 同一页内业务单元名称只查一次
	buNames := make(map[int64]string)
	items := make([]v1.TemplateItem, 0, len(tpls))
	for _, tpl := range tpls {
		name, ok := buNames[tpl.BusinessUnitID]
		if !ok {
			if bu, err := s.businessUnitRepo.GetByID(ctx, tpl.BusinessUnitID); err == nil && bu != nil {
				name = bu.Name
			}
			buNames[tpl.BusinessUnitID] = name
		}
		items = append(items, v1.TemplateItem{
			Id:               tpl.Id,
			Name:             tpl.Name,
			Status:           string(tpl.Status),
			Environment:      string(tpl.Environment),
			BusinessUnitID:   tpl.BusinessUnitID,
			BusinessUnitName: name,
			PrimaryRegion:    tpl.PrimaryRegion,
			RequestDate:      tpl.RequestDate,
			UpdateTime:       tpl.UpdateTime,
		})
	}
	return &v1.ListTemplateResponseData{Total: total, List: items}, nil
}

func (s *templateService) UpdateTemplate(ctx context.Context, actor model.Actor, id int64, req *v1.UpdateTemplateRequest) (*v1.TemplateDetail, error) {
	if req.Status != nil {
		return nil, v1.ErrStatusChangeNotAllowed
	}

	tpl, err := s.getTemplate(ctx, id)
	if err != nil {
		return nil, err
	}
	before := templateSnapshot(tpl)

	if req.Name != nil && *req.Name != tpl.Name {
		existing, err := s.templateRepo.GetByName(ctx, *req.Name)
		if err != nil {
			s.logger.WithContext(ctx).Error("templateRepo.GetByName error", zap.Error(err))
			return nil, v1.ErrInternalServerError
		}
		if existing != nil && existing.Id != tpl.Id {
			return nil, v1.ErrTemplateNameInUse
		}
		tpl.Name = *req.Name
	}
	if req.Description != nil {
		tpl.Description = *req.Description
	}
	if req.Environment != nil {
		tpl.Environment = model.Environment(*req.Environment)
	}
	if req.BusinessUnitID != nil {
		tpl.BusinessUnitID = *req.BusinessUnitID
	}
	// contact_id / base_image_id 传 0 表示解除关联
	contactRef := clearableRef(&tpl.ContactID, req.ContactID)
	if req.ContactName != nil {
		tpl.ContactName = *req.ContactName
	}
	if req.ContactEmail != nil {
		tpl.ContactEmail = *req.ContactEmail
	}
	if req.ContactPhone != nil {
		tpl.ContactPhone = *req.ContactPhone
	}
	if req.NamingPrefix != nil {
		tpl.NamingPrefix = *req.NamingPrefix
	}
	if req.NamingPattern != nil {
		tpl.NamingPattern = *req.NamingPattern
	}
	if req.HostPoolType != nil {
		tpl.HostPoolType = model.HostPoolType(*req.HostPoolType)
	}
	if req.LoadBalancerType != nil {
		tpl.LoadBalancerType = model.LoadBalancerType(*req.LoadBalancerType)
	}
	if req.MaxSessionLimit != nil {
		tpl.MaxSessionLimit = *req.MaxSessionLimit
	}
	if req.Regions != nil {
		tpl.Regions = append([]string(nil), req.Regions...)
	}
	if req.PrimaryRegion != nil {
		tpl.PrimaryRegion = *req.PrimaryRegion
	}
	baseImageRef := clearableRef(&tpl.BaseImageID, req.BaseImageID)
	if req.Tags != nil {
		tpl.Tags = req.Tags
	}

	// 区域和主区域可能分别更新，按合并后的结果校验
	if !tpl.HasRegion(tpl.PrimaryRegion) {
		return nil, v1.ErrPrimaryRegionNotInList
	}
	if err := s.checkReferences(ctx, tpl.BusinessUnitID, contactRef, baseImageRef); err != nil {
		return nil, err
	}

	changes, oldValues, newValues := diffPayloads(before, templateSnapshot(tpl))
	if changes.Len() == 0 {
		return s.buildDetail(ctx, tpl)
	}

	tpl.UpdatedById = actor.AdminID
	if err := s.templateRepo.Update(ctx, tpl); err != nil {
		if repository.IsDuplicateKey(err) {
			return nil, v1.ErrTemplateNameInUse
		}
		s.logger.WithContext(ctx).Error("templateRepo.Update error", zap.Error(err))
		return nil, v1.ErrInternalServerError
	}

	_ = s.history.Append(ctx, actor, lifecycle.HistoryEvent{
		TemplateID: tpl.Id,
		Action:     model.HistoryActionUpdated,
		Changes:    changes,
	})
	_ = s.audit.Record(ctx, actor, lifecycle.AuditEvent{
		Action:     model.AuditAction(model.EntityTypeTemplate, "UPDATED"),
		EntityType: model.EntityTypeTemplate,
		EntityID:   idString(tpl.Id),
		EntityName: tpl.Name,
		OldValue:   oldValues,
		NewValue:   newValues,
	})

	return s.buildDetail(ctx, tpl)
}

// DeleteTemplate 同一事务内删除模板、应用关联和变更日志；审计日志保留
func (s *templateService) DeleteTemplate(ctx context.Context, actor model.Actor, id int64) error {
	tpl, err := s.getTemplate(ctx, id)
	if err != nil {
		return err
	}

	err = s.tm.Transaction(ctx, func(ctx context.Context) error {
		if err := s.templateAppRepo.DeleteByTemplateID(ctx, id); err != nil {
			return err
		}
		if err := s.historyRepo.DeleteByTemplateID(ctx, id); err != nil {
			return err
		}
		return s.templateRepo.Delete(ctx, id)
	})
	if err != nil {
		s.logger.WithContext(ctx).Error("delete template error", zap.Int64("template_id", id), zap.Error(err))
		return v1.ErrInternalServerError
	}

	_ = s.audit.Record(ctx, actor, lifecycle.AuditEvent{
		Action:     model.AuditAction(model.EntityTypeTemplate, "DELETED"),
		EntityType: model.EntityTypeTemplate,
		EntityID:   idString(tpl.Id),
		EntityName: tpl.Name,
		OldValue:   templateSnapshot(tpl),
	})
	return nil
}

// UpdateStatus 校验流转 → 写入日期 → 保存 → 记录变更日志和审计
// 并发修改同一模板时后写覆盖先写
func (s *templateService) UpdateStatus(ctx context.Context, actor model.Actor, id int64, req *v1.UpdateTemplateStatusRequest) (*v1.TemplateDetail, error) {
	tpl, err := s.getTemplate(ctx, id)
	if err != nil {
		return nil, err
	}

	decision := lifecycle.Decide(tpl.Status, model.TemplateStatus(req.Status))
	s.metrics.RecordTransition(string(decision.From), string(decision.To), decision.Allowed)
	if !decision.Allowed {
		return nil, &v1.TransitionError{
			From:   string(decision.From),
			To:     string(decision.To),
			Reason: decision.Reason,
		}
	}

	now := s.now()
	tpl.Status = decision.To
	tpl.UpdatedById = actor.AdminID
	stamped := decision.ApplyStamp(tpl, now)
	if err := s.templateRepo.Update(ctx, tpl); err != nil {
		s.logger.WithContext(ctx).Error("templateRepo.Update error", zap.Error(err))
		return nil, v1.ErrInternalServerError
	}

	changes := model.NewPayload().Set("status", model.MapValue(model.NewPayload().
		Set("old", model.StringValue(string(decision.From))).
		Set("new", model.StringValue(string(decision.To)))))
	if stamped {
		changes.Set(string(decision.Stamp), timeValue(now))
	}
	_ = s.history.Append(ctx, actor, lifecycle.StatusChanged(tpl.Id, decision, changes, req.Comment))

	var details *model.Payload
	if req.Comment != "" {
		details = model.NewPayload().Set("comment", model.StringValue(req.Comment))
	}
	_ = s.audit.Record(ctx, actor, lifecycle.AuditEvent{
		Action:     model.AuditAction(model.EntityTypeTemplate, "STATUS_CHANGED"),
		EntityType: model.EntityTypeTemplate,
		EntityID:   idString(tpl.Id),
		EntityName: tpl.Name,
		Details:    details,
		OldValue:   model.NewPayload().Set("status", model.StringValue(string(decision.From))),
		NewValue:   model.NewPayload().Set("status", model.StringValue(string(decision.To))),
	})

	return s.buildDetail(ctx, tpl)
}

func (s *templateService) ListTransitions(ctx context.Context, id int64) (*v1.ListTransitionsResponseData, error) {
	tpl, err := s.getTemplate(ctx, id)
	if err != nil {
		return nil, err
	}
	return &v1.ListTransitionsResponseData{
		Status:             string(tpl.Status),
		AllowedTransitions: statusStrings(lifecycle.AllowedTargets(tpl.Status)),
	}, nil
}

func (s *templateService) getTemplate(ctx context.Context, id int64) (*model.Template, error) {
	tpl, err := s.templateRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.WithContext(ctx).Error("templateRepo.GetByID error", zap.Int64("template_id", id), zap.Error(err))
		return nil, v1.ErrInternalServerError
	}
	if tpl == nil {
		return nil, v1.ErrTemplateNotFound
	}
	return tpl, nil
}

// checkReferences 校验外键引用存在；contactID/baseImageID 为空表示未修改
// clearableRef 应用可选外键的更新：nil 不变，0 置空，其余赋值；返回需要校验存在性的 ID
func clearableRef(field **int64, req *int64) *int64 {
	if req == nil {
		return nil
	}
	if *req == 0 {
		*field = nil
		return nil
	}
	id := *req
	*field = &id
	return &id
}

func (s *templateService) checkReferences(ctx context.Context, businessUnitID int64, contactID, baseImageID *int64) error {
	bu, err := s.businessUnitRepo.GetByID(ctx, businessUnitID)
	if err != nil {
		s.logger.WithContext(ctx).Error("businessUnitRepo.GetByID error", zap.Error(err))
		return v1.ErrInternalServerError
	}
	if bu == nil {
		return v1.ErrBusinessUnitNotFound
	}
	if contactID != nil {
		c, err := s.contactRepo.GetByID(ctx, *contactID)
		if err != nil {
			s.logger.WithContext(ctx).Error("contactRepo.GetByID error", zap.Error(err))
			return v1.ErrInternalServerError
		}
		if c == nil {
			return v1.ErrContactNotFound
		}
	}
	if baseImageID != nil {
		img, err := s.baseImageRepo.GetByID(ctx, *baseImageID)
		if err != nil {
			s.logger.WithContext(ctx).Error("baseImageRepo.GetByID error", zap.Error(err))
			return v1.ErrInternalServerError
		}
		if img == nil {
			return v1.ErrBaseImageNotFound
		}
	}
	return nil
}

func (s *templateService) buildDetail(ctx context.Context, tpl *model.Template) (*v1.TemplateDetail, error) {
	detail := &v1.TemplateDetail{
		Id:                 tpl.Id,
		Name:               tpl.Name,
		Description:        tpl.Description,
		Status:             string(tpl.Status),
		Environment:        string(tpl.Environment),
		RequestDate:        tpl.RequestDate,
		ApprovedDate:       tpl.ApprovedDate,
		DeployedDate:       tpl.DeployedDate,
		DeprecatedDate:     tpl.DeprecatedDate,
		BusinessUnitID:     tpl.BusinessUnitID,
		ContactID:          tpl.ContactID,
		ContactName:        tpl.ContactName,
		ContactEmail:       tpl.ContactEmail,
		ContactPhone:       tpl.ContactPhone,
		NamingPrefix:       tpl.NamingPrefix,
		NamingPattern:      tpl.NamingPattern,
		HostPoolType:       string(tpl.HostPoolType),
		LoadBalancerType:   string(tpl.LoadBalancerType),
		MaxSessionLimit:    tpl.MaxSessionLimit,
		Regions:            append([]string{}, tpl.Regions...),
		PrimaryRegion:      tpl.PrimaryRegion,
		BaseImageID:        tpl.BaseImageID,
		Tags:               tpl.Tags,
		AllowedTransitions: statusStrings(lifecycle.AllowedTargets(tpl.Status)),
		CreatedById:        tpl.CreatedById,
		UpdatedById:        tpl.UpdatedById,
		CreateTime:         tpl.CreateTime,
		UpdateTime:         tpl.UpdateTime,
	}

	// 关联名称查询失败不影响详情返回
	if bu, err := s.businessUnitRepo.GetByID(ctx, tpl.BusinessUnitID); err == nil && bu != nil {
		detail.BusinessUnitName = bu.Name
	}
	if tpl.BaseImageID != nil {
		if img, err := s.baseImageRepo.GetByID(ctx, *tpl.BaseImageID); err == nil && img != nil {
			detail.BaseImageName = img.Name
		}
	}

	apps, err := s.templateAppRepo.ListByTemplateID(ctx, tpl.Id)
	if err != nil {
		s.logger.WithContext(ctx).Error("templateAppRepo.ListByTemplateID error", zap.Error(err))
		return nil, v1.ErrInternalServerError
	}
	detail.Applications = toTemplateApplicationItems(apps)
	return detail, nil
}

func statusStrings(in []model.TemplateStatus) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		out = append(out, string(s))
	}
	return out
}

func containsString(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
