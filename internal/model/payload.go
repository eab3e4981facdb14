package model

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// ValueKind 载荷值的类型，封闭集合
type ValueKind uint8

const (
	KindNull ValueKind = iota
	KindString
	KindNumber
	KindBool
	KindMap
)

func (k ValueKind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindMap:
		return "map"
	}
	return "unknown"
}

// Value 载荷中的单个值：string / number / bool / null / 嵌套 Payload
type Value struct {
	kind ValueKind
	str  string
	num  float64
	b    bool
	m    *Payload
}

func NullValue() Value            { return Value{kind: KindNull} }
func StringValue(s string) Value  { return Value{kind: KindString, str: s} }
func NumberValue(n float64) Value { return Value{kind: KindNumber, num: n} }
func IntValue(n int64) Value      { return Value{kind: KindNumber, num: float64(n)} }
func BoolValue(b bool) Value      { return Value{kind: KindBool, b: b} }

func MapValue(p *Payload) Value {
	if p == nil {
		return NullValue()
	}
	return Value{kind: KindMap, m: p}
}

func (v Value) Kind() ValueKind { return v.kind }
func (v Value) IsNull() bool    { return v.kind == KindNull }

func (v Value) Str() (string, bool) {
	return v.str, v.kind == KindString
}

func (v Value) Num() (float64, bool) {
	return v.num, v.kind == KindNumber
}

func (v Value) Bool() (bool, bool) {
	return v.b, v.kind == KindBool
}

func (v Value) Map() (*Payload, bool) {
	return v.m, v.kind == KindMap
}

// Equal 深度比较
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.str == o.str
	case KindNumber:
		return v.num == o.num
	case KindBool:
		return v.b == o.b
	case KindMap:
		return v.m.Equal(o.m)
	}
	return true
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindString:
		return json.Marshal(v.str)
	case KindNumber:
		return []byte(strconv.FormatFloat(v.num, 'f', -1, 64)), nil
	case KindBool:
		return json.Marshal(v.b)
	case KindMap:
		return v.m.MarshalJSON()
	}
	return []byte("null"), nil
}

func (v *Value) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	val, err := decodeValue(dec)
	if err != nil {
		return err
	}
	*v = val
	return nil
}

var ErrUnsupportedPayloadValue = errors.New("payload values must be string, number, bool, null or object")

// Payload 有序的 string → Value 映射，按插入顺序序列化，保证往返结果稳定
type Payload struct {
	keys   []string
	values map[string]Value
}

func NewPayload() *Payload {
	return &Payload{values: make(map[string]Value)}
}

// Set 写入键值；已存在的键保留原有位置
func (p *Payload) Set(key string, v Value) *Payload {
	if p.values == nil {
		p.values = make(map[string]Value)
	}
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = v
	return p
}

func (p *Payload) Get(key string) (Value, bool) {
	if p == nil {
		return Value{}, false
	}
	v, ok := p.values[key]
	return v, ok
}

func (p *Payload) Delete(key string) {
	if p == nil {
		return
	}
	if _, ok := p.values[key]; !ok {
		return
	}
	delete(p.values, key)
	for i, k := range p.keys {
		if k == key {
			p.keys = append(p.keys[:i], p.keys[i+1:]...)
			break
		}
	}
}

func (p *Payload) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

func (p *Payload) Keys() []string {
	if p == nil {
		return nil
	}
	out := make([]string, len(p.keys))
	copy(out, p.keys)
	return out
}

// Each 按插入顺序遍历
func (p *Payload) Each(fn func(key string, v Value)) {
	if p == nil {
		return
	}
	for _, k := range p.keys {
		fn(k, p.values[k])
	}
}

// Equal 键集合与值相同即相等，不比较顺序
func (p *Payload) Equal(o *Payload) bool {
	if p.Len() != o.Len() {
		return false
	}
	for _, k := range p.Keys() {
		ov, ok := o.Get(k)
		if !ok || !p.values[k].Equal(ov) {
			return false
		}
	}
	return true
}

func (p *Payload) MarshalJSON() ([]byte, error) {
	if p == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range p.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := p.values[k].MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (p *Payload) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	val, err := decodeValue(dec)
	if err != nil {
		return err
	}
	switch val.kind {
	case KindNull:
		*p = Payload{values: make(map[string]Value)}
		return nil
	case KindMap:
		*p = *val.m
		return nil
	}
	return fmt.Errorf("payload must be a JSON object, got %s", val.kind)
}

// Value 实现 driver.Valuer，以 JSON 文本落库
func (p *Payload) Value() (driver.Value, error) {
	if p == nil {
		return nil, nil
	}
	b, err := p.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan 实现 sql.Scanner
func (p *Payload) Scan(src interface{}) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		*p = Payload{values: make(map[string]Value)}
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into Payload", src)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		*p = Payload{values: make(map[string]Value)}
		return nil
	}
	return p.UnmarshalJSON(data)
}

// GormDataType 统一按 JSON 处理
func (Payload) GormDataType() string {
	return "json"
}

func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}
	switch t := tok.(type) {
	case nil:
		return NullValue(), nil
	case string:
		return StringValue(t), nil
	case bool:
		return BoolValue(t), nil
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return Value{}, err
		}
		return NumberValue(f), nil
	case json.Delim:
		if t != '{' {
			return Value{}, ErrUnsupportedPayloadValue
		}
		p := NewPayload()
		for dec.More() {
			kt, err := dec.Token()
			if err != nil {
				return Value{}, err
			}
			key, ok := kt.(string)
			if !ok {
				return Value{}, fmt.Errorf("unexpected object key %v", kt)
			}
			v, err := decodeValue(dec)
			if err != nil {
				return Value{}, err
			}
			p.Set(key, v)
		}
		// 消费结尾的 '}'
		if _, err := dec.Token(); err != nil {
			return Value{}, err
		}
		return MapValue(p), nil
	}
	return Value{}, ErrUnsupportedPayloadValue
}
