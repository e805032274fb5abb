package xmac

// IsZero 报告 a 是否为全零（nil）地址 00-00-00-00-00-00。
// 全零地址是合法地址，通常表示"未知"或"未分配"。
// 与零值 Addr{} 相同。
func (a Addr) IsZero() bool {
	return a == Addr{}
}

// IsBroadcast 报告 a 是否为广播地址 FF-FF-FF-FF-FF-FF。
// 广播地址面向网段内所有设备。
func (a Addr) IsBroadcast() bool {
	return a == broadcastAddr()
}

// IsUnicast 报告 a 是否为单播地址。
// 单播地址的第一字节最低位（bit 0）为 0。
// 与 [Addr.IsMulticast] 互补：任何地址恰好满足其中之一。
func (a Addr) IsUnicast() bool {
	return a.bytes[0]&0x01 == 0
}

// IsMulticast 报告 a 是否为多播地址。
// 多播地址的第一字节最低位（bit 0）为 1。
// 广播地址也是一种特殊的多播地址。
func (a Addr) IsMulticast() bool {
	return a.bytes[0]&0x01 == 1
}

// IsUniversallyAdministered 报告 a 是否为全球唯一地址（UAA）。
// UAA 的第一字节次低位（bit 1）为 0。
// 物理网卡出厂时分配的地址通常是 UAA。
// 与 [Addr.IsLocallyAdministered] 互补：任何地址恰好满足其中之一。
func (a Addr) IsUniversallyAdministered() bool {
	return a.bytes[0]&0x02 == 0
}

// IsLocallyAdministered 报告 a 是否为本地管理地址（LAA）。
// LAA 的第一字节次低位（bit 1）为 1。
// 虚拟机、容器等软件分配的地址通常是 LAA。
func (a Addr) IsLocallyAdministered() bool {
	return a.bytes[0]&0x02 == 0x02
}

// IsSpecial 报告 a 是否为特殊地址（全零地址或广播地址）。
// 特殊地址通常不应用于资产识别等业务场景。
func (a Addr) IsSpecial() bool {
	return a.IsZero() || a.IsBroadcast()
}

// OUI 返回组织唯一标识符（Organizationally Unique Identifier）。
// OUI 是地址的前 3 字节，由 IEEE 分配给设备制造商。
// 本包只做字节提取，不做厂商数据库查询。
func (a Addr) OUI() [3]byte {
	return [3]byte{a.bytes[0], a.bytes[1], a.bytes[2]}
}

// NIC 返回网络接口控制器标识（后 3 字节，由制造商分配）。
func (a Addr) NIC() [3]byte {
	return [3]byte{a.bytes[3], a.bytes[4], a.bytes[5]}
}
