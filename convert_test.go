package xmac

import (
	"errors"
	"net"
	"testing"
)

func TestAddrFromSlice(t *testing.T) {
	tests := []struct {
		name    string
		input   []byte
		want    Addr
		wantErr error
	}{
		{"valid", []byte{0xac, 0xde, 0x48, 0x23, 0x45, 0x67}, New(0xac, 0xde, 0x48, 0x23, 0x45, 0x67), nil},
		{"all_zero", []byte{0, 0, 0, 0, 0, 0}, Zero(), nil},
		{"nil", nil, Addr{}, ErrInvalidLength},
		{"empty", []byte{}, Addr{}, ErrInvalidLength},
		{"too_short", []byte{0x01, 0x02, 0x03}, Addr{}, ErrInvalidLength},
		{"too_long_eui64", []byte{1, 2, 3, 4, 5, 6, 7, 8}, Addr{}, ErrInvalidLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AddrFromSlice(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("AddrFromSlice() error = %v, wantErr %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("AddrFromSlice() unexpected error = %v", err)
			}
			if got != tt.want {
				t.Errorf("AddrFromSlice() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAddrFromSlice_Copies(t *testing.T) {
	b := []byte{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff}
	addr, err := AddrFromSlice(b)
	if err != nil {
		t.Fatalf("AddrFromSlice() error = %v", err)
	}

	// 修改入参切片不影响已创建的地址
	b[0] = 0x00
	if addr.Bytes()[0] != 0xaa {
		t.Errorf("AddrFromSlice() aliased its argument")
	}
}

func TestAddr_HardwareAddr(t *testing.T) {
	addr := New(0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff)
	hw := addr.HardwareAddr()

	if len(hw) != 6 {
		t.Fatalf("HardwareAddr() length = %d, want 6", len(hw))
	}
	for i, b := range hw {
		if b != addr.bytes[i] {
			t.Errorf("HardwareAddr()[%d] = %02x, want %02x", i, b, addr.bytes[i])
		}
	}

	// 全零地址同样返回 6 字节（没有无效地址概念）
	if hw := Zero().HardwareAddr(); len(hw) != 6 {
		t.Errorf("Zero().HardwareAddr() length = %d, want 6", len(hw))
	}

	// 返回副本，修改不影响原值
	hw[0] = 0x00
	if addr.bytes[0] != 0xaa {
		t.Errorf("HardwareAddr() returned reference instead of copy")
	}
}

func TestFromHardwareAddr(t *testing.T) {
	hw, err := net.ParseMAC("ac:de:48:23:45:67")
	if err != nil {
		t.Fatalf("net.ParseMAC() error = %v", err)
	}

	addr, err := FromHardwareAddr(hw)
	if err != nil {
		t.Fatalf("FromHardwareAddr() error = %v", err)
	}
	if want := New(0xac, 0xde, 0x48, 0x23, 0x45, 0x67); addr != want {
		t.Errorf("FromHardwareAddr() = %v, want %v", addr, want)
	}

	// EUI-64 被拒绝
	hw64, err := net.ParseMAC("02:00:5e:10:00:00:00:01")
	if err != nil {
		t.Fatalf("net.ParseMAC() error = %v", err)
	}
	if _, err := FromHardwareAddr(hw64); !errors.Is(err, ErrInvalidLength) {
		t.Errorf("FromHardwareAddr(EUI-64) error = %v, want ErrInvalidLength", err)
	}
}

func TestHardwareAddr_RoundTrip(t *testing.T) {
	addr := New(0x01, 0x00, 0x5e, 0x00, 0x00, 0x01)
	back, err := FromHardwareAddr(addr.HardwareAddr())
	if err != nil {
		t.Fatalf("round trip error = %v", err)
	}
	if back != addr {
		t.Errorf("round trip = %v, want %v", back, addr)
	}
}
