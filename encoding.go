package xmac

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// 序列化统一采用字节序列形式（6 个字节值），而非文本形式。
// 文本形式仅用于展示（见 format.go），本包不提供其反序列化。

// MarshalBinary 实现 [encoding.BinaryMarshaler]。
// 输出原始 6 字节（传输顺序）。
func (a Addr) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 6)
	copy(buf, a.bytes[:])
	return buf, nil
}

// UnmarshalBinary 实现 [encoding.BinaryUnmarshaler]。
// 输入必须恰好 6 字节，否则返回 [ErrInvalidLength]。
// 对 nil 接收者返回 [ErrNilReceiver]。
func (a *Addr) UnmarshalBinary(data []byte) error {
	if a == nil {
		return ErrNilReceiver
	}
	if len(data) != 6 {
		return fmt.Errorf("%w: expected 6 bytes, got %d", ErrInvalidLength, len(data))
	}
	copy(a.bytes[:], data)
	return nil
}

// MarshalJSON 实现 [json.Marshaler]。
// 输出长度为 6 的整数数组（如 [172,222,72,35,69,103]）。
//
// 设计决策: 输出字节数组而非字符串，保持结构序列化（与 Binary/SQL
// 形式一致），且反序列化无需文本解析。[6]byte 数组（非切片）经
// [json.Marshal] 自然编码为数字数组，不会触发 []byte 的 base64 规则。
func (a Addr) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.bytes)
}

// UnmarshalJSON 实现 [json.Unmarshaler]。
// 接受长度为 6 的整数数组，元素取值 0–255。
// null 设置为零值（全零地址）。
// 对 nil 接收者返回 [ErrNilReceiver]。
func (a *Addr) UnmarshalJSON(data []byte) error {
	if a == nil {
		return ErrNilReceiver
	}
	// 处理 null（与 Go 标准库 [time.Time.UnmarshalJSON] 一致，
	// 精确字节比较，不去除空白）
	if string(data) == "null" {
		*a = Addr{}
		return nil
	}

	// 不直接解码到 [6]byte：标准库对数组会静默丢弃多余元素、
	// 零填充缺失元素，这里需要严格校验长度和取值范围。
	var elems []int
	if err := json.Unmarshal(data, &elems); err != nil {
		return fmt.Errorf("%w: %w", ErrUnsupportedType, err)
	}
	if len(elems) != 6 {
		return fmt.Errorf("%w: expected 6 elements, got %d", ErrInvalidLength, len(elems))
	}
	var addr Addr
	for i, v := range elems {
		if v < 0 || v > 0xff {
			return fmt.Errorf("%w: element %d is %d", ErrValueOutOfRange, i, v)
		}
		addr.bytes[i] = byte(v)
	}
	*a = addr
	return nil
}

// Value 实现 [database/sql/driver.Valuer]。
// 用于 SQL 数据库写入。
// 输出 6 字节 []byte，适配 BINARY(6) 列。
func (a Addr) Value() (driver.Value, error) {
	buf := make([]byte, 6)
	copy(buf, a.bytes[:])
	return buf, nil
}

// Scan 实现 [database/sql.Scanner]。
// 用于 SQL 数据库读取。
// 接受 6 字节 []byte（BINARY(6) 列的原始字节）和 nil（SQL NULL，
// 设置为零值）。其他长度返回 [ErrInvalidLength]；字符串等其他类型
// 返回 [ErrUnsupportedType]——文本形式的解析不在本包职责内。
// 对 nil 接收者返回 [ErrNilReceiver]。
func (a *Addr) Scan(src any) error {
	if a == nil {
		return ErrNilReceiver
	}
	switch v := src.(type) {
	case nil:
		*a = Addr{}
		return nil
	case []byte:
		if len(v) != 6 {
			return fmt.Errorf("%w: expected 6 bytes, got %d", ErrInvalidLength, len(v))
		}
		copy(a.bytes[:], v)
		return nil
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, src)
	}
}
