package fingerprint

// POSIX st_mode bits
const (
	modeTypeMask = 0o170000
	modeSocket   = 0o140000
	modeSymlink  = 0o120000
	modeRegular  = 0o100000
	modeBlock    = 0o060000
	modeDir      = 0o040000
	modeChar     = 0o020000
	modeFIFO     = 0o010000

	modeSetuid = 0o4000
	modeSetgid = 0o2000
	modeSticky = 0o1000
)

// FormatMode renders a raw st_mode word the way "ls -l" does,
// e.g. "drwxr-xr-x", "lrwxrwxrwx" or "-rwsr-x--T".
func FormatMode(mode uint32) string {
	buf := [10]byte{typeChar(mode), '-', '-', '-', '-', '-', '-', '-', '-', '-'}

	const rwx = "rwx"
	for i := 0; i < 9; i++ {
		if mode&(1<<uint(8-i)) != 0 {
			buf[i+1] = rwx[i%3]
		}
	}

	buf[3] = specialExec(mode&0o100 != 0, mode&modeSetuid != 0, 's', 'S')
	buf[6] = specialExec(mode&0o010 != 0, mode&modeSetgid != 0, 's', 'S')
	buf[9] = specialExec(mode&0o001 != 0, mode&modeSticky != 0, 't', 'T')

	return string(buf[:])
}

func typeChar(mode uint32) byte {
	switch mode & modeTypeMask {
	case modeRegular:
		return '-'
	case modeDir:
		return 'd'
	case modeSymlink:
		return 'l'
	case modeChar:
		return 'c'
	case modeBlock:
		return 'b'
	case modeFIFO:
		return 'p'
	case modeSocket:
		return 's'
	default:
		return '?'
	}
}

// specialExec picks the execute column when a special bit shares it
func specialExec(exec, special bool, withExec, withoutExec byte) byte {
	switch {
	case special && exec:
		return withExec
	case special:
		return withoutExec
	case exec:
		return 'x'
	default:
		return '-'
	}
}
