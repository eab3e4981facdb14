package service

import (
	"strconv"
	"strings"
	"time"

	"avdportal/internal/model"
)

// templateSnapshot 模板可编辑字段的快照，用于生成变更差异和审计值
func templateSnapshot(t *model.Template) *model.Payload {
	p := model.NewPayload().
		Set("name", model.StringValue(t.Name)).
		Set("description", model.StringValue(t.Description)).
		Set("status", model.StringValue(string(t.Status))).
		Set("environment", model.StringValue(string(t.Environment))).
		Set("business_unit_id", model.IntValue(t.BusinessUnitID)).
		Set("contact_id", optionalID(t.ContactID)).
		Set("contact_name", model.StringValue(t.ContactName)).
		Set("contact_email", model.StringValue(t.ContactEmail)).
		Set("contact_phone", model.StringValue(t.ContactPhone)).
		Set("naming_prefix", model.StringValue(t.NamingPrefix)).
		Set("naming_pattern", model.StringValue(t.NamingPattern)).
		Set("host_pool_type", model.StringValue(string(t.HostPoolType))).
		Set("load_balancer_type", model.StringValue(string(t.LoadBalancerType))).
		Set("max_session_limit", model.IntValue(int64(t.MaxSessionLimit))).
		Set("regions", model.StringValue(strings.Join(t.Regions, ","))).
		Set("primary_region", model.StringValue(t.PrimaryRegion)).
		Set("base_image_id", optionalID(t.BaseImageID))
	if t.Tags != nil {
		p.Set("tags", model.MapValue(t.Tags))
	} else {
		p.Set("tags", model.NullValue())
	}
	return p
}

// diffPayloads 返回变化的字段：changes 为 {field: {old, new}}，old/new 为变化字段的旧值和新值
func diffPayloads(before, after *model.Payload) (changes, oldValues, newValues *model.Payload) {
	changes, oldValues, newValues = model.NewPayload(), model.NewPayload(), model.NewPayload()
	after.Each(func(key string, nv model.Value) {
		ov, ok := before.Get(key)
		if !ok {
			ov = model.NullValue()
		}
		if ov.Equal(nv) {
			return
		}
		changes.Set(key, model.MapValue(model.NewPayload().Set("old", ov).Set("new", nv)))
		oldValues.Set(key, ov)
		newValues.Set(key, nv)
	})
	return changes, oldValues, newValues
}

func optionalID(id *int64) model.Value {
	if id == nil {
		return model.NullValue()
	}
	return model.IntValue(*id)
}

func idString(id int64) string {
	return strconv.FormatInt(id, 10)
}

func timeValue(t time.Time) model.Value {
	return model.StringValue(t.UTC().Format(time.RFC3339))
}
