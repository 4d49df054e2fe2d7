package evdev

import (
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Linux ioctl request encoding, see asm-generic/ioctl.h (_IOC macro).
const (
	iocNRBits   = 8
	iocTypeBits = 8
	iocSizeBits = 14

	iocNRShift   = 0
	iocTypeShift = iocNRShift + iocNRBits
	iocSizeShift = iocTypeShift + iocTypeBits
	iocDirShift  = iocSizeShift + iocSizeBits

	iocRead = 2
)

func ioc(dir, typ, nr, size uintptr) uintptr {
	return dir<<iocDirShift | typ<<iocTypeShift | nr<<iocNRShift | size<<iocSizeShift
}

// EVIOCGNAME(len) = _IOC(_IOC_READ, 'E', 0x06, len)
func eviocgname(size uintptr) uintptr { return ioc(iocRead, 'E', 0x06, size) }

// EVIOCGBIT(0, len) = _IOC(_IOC_READ, 'E', 0x20, len)
// ev=0 queries the supported event type bitmask.
func eviocgbit(size uintptr) uintptr { return ioc(iocRead, 'E', 0x20, size) }

func ioctl(fd uintptr, op uintptr, arg unsafe.Pointer) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, fd, op, uintptr(arg))
	if errno != 0 {
		return os.NewSyscallError("SYS_IOCTL", errno)
	}
	return nil
}
