package cal

import (
	"time"

	"github.com/beevik/ntp"

	"coreutils/internal/cli"
)

const ntpTimeout = 5 * time.Second

// queryTime запрашивает текущее время у NTP-сервера
var queryTime = func(host string) (time.Time, error) {
	resp, err := ntp.QueryWithOptions(host, ntp.QueryOptions{Timeout: ntpTimeout})
	if err != nil {
		return time.Time{}, err
	}
	if err := resp.Validate(); err != nil {
		return time.Time{}, err
	}
	return time.Now().Add(resp.ClockOffset), nil
}

// today возвращает текущую дату. Если задан NTP-сервер, время берётся с него,
// при ошибке используются локальные часы
func today(app *cli.App, server string) time.Time {
	if server == "" {
		return app.Now()
	}
	now, err := queryTime(server)
	if err != nil {
		app.Log.Warn("ntp query failed, using local clock", "server", server, "err", err)
		return app.Now()
	}
	app.Log.Debug("ntp time", "server", server, "time", now)
	return now.Local()
}
