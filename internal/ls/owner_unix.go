//go:build unix

package ls

import (
	"io/fs"
	"os/user"
	"strconv"
	"syscall"
)

// owner возвращает число ссылок и имена владельца и группы файла.
// Если имя не найдено, выводится числовой идентификатор
func owner(info fs.FileInfo) (uint64, string, string) {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return 1, "-", "-"
	}

	uid := strconv.FormatUint(uint64(st.Uid), 10)
	userName := uid
	if u, err := user.LookupId(uid); err == nil {
		userName = u.Username
	}

	gid := strconv.FormatUint(uint64(st.Gid), 10)
	groupName := gid
	if g, err := user.LookupGroupId(gid); err == nil {
		groupName = g.Name
	}
	return uint64(st.Nlink), userName, groupName
}
