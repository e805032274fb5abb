package xmac

import "errors"

// 预定义错误变量，支持 errors.Is 判断。
// 核心操作（构造、判断、格式化）没有错误路径，只有字节序列转换和
// 反序列化会返回错误。
var (
	// ErrInvalidLength 表示字节序列长度不正确（期望 6 字节）。
	ErrInvalidLength = errors.New("xmac: invalid length")

	// ErrNilReceiver 表示对 nil 接收者调用了反序列化方法。
	ErrNilReceiver = errors.New("xmac: nil receiver")

	// ErrUnsupportedType 表示反序列化输入的类型不受支持。
	ErrUnsupportedType = errors.New("xmac: unsupported type")

	// ErrValueOutOfRange 表示 JSON 数组元素超出字节取值范围（0–255）。
	ErrValueOutOfRange = errors.New("xmac: value out of range")
)
