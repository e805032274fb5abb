package xmac

import (
	"fmt"
	"net"
)

// AddrFromSlice 从字节切片创建地址（拷贝入参）。
// 切片长度必须为 6，否则返回 [ErrInvalidLength]。
func AddrFromSlice(b []byte) (Addr, error) {
	if len(b) != 6 {
		return Addr{}, fmt.Errorf("%w: expected 6 bytes, got %d", ErrInvalidLength, len(b))
	}
	var addr Addr
	copy(addr.bytes[:], b)
	return addr, nil
}

// HardwareAddr 返回 [net.HardwareAddr] 表示。
// 返回副本，修改不影响原值。
func (a Addr) HardwareAddr() net.HardwareAddr {
	hw := make(net.HardwareAddr, 6)
	copy(hw, a.bytes[:])
	return hw
}

// FromHardwareAddr 从 [net.HardwareAddr] 创建地址。
// 长度必须为 6 字节（EUI-48），否则返回 [ErrInvalidLength]。
// 这是字节序列转换而非文本解析：文本格式的解析是调用方的职责。
func FromHardwareAddr(hw net.HardwareAddr) (Addr, error) {
	return AddrFromSlice([]byte(hw))
}
