package events

import "github.com/wehlutyk/kakoune/internal/logging"

type AppTracer struct{}

type ClientTracer struct{}

type ReloadTracer struct{}

type OverlayTracer struct{}

type HookTracer struct{}

var (
	App     = AppTracer{}
	Client  = ClientTracer{}
	Reload  = ReloadTracer{}
	Overlay = OverlayTracer{}
	Hook    = HookTracer{}
)

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (ClientTracer) Key(client, key string, mode string) {
	logging.Trace("client.key", map[string]interface{}{
		"client": client,
		"key":    key,
		"mode":   mode,
	})
}

func (ClientTracer) Interrupt(client string) {
	logging.Trace("client.interrupt", map[string]interface{}{"client": client})
}

func (ClientTracer) Redraw(client string, full bool) {
	logging.Trace("client.redraw", map[string]interface{}{"client": client, "full": full})
}

func (ClientTracer) StatusDraw(client string) {
	logging.Trace("client.status-draw", map[string]interface{}{"client": client})
}

func (ClientTracer) RuntimeError(client string, err error) {
	if err == nil {
		return
	}
	logging.Trace("client.runtime-error", map[string]interface{}{"client": client, "error": err.Error()})
}

func (ClientTracer) Removed(client string, graceful bool) {
	logging.Trace("client.removed", map[string]interface{}{"client": client, "graceful": graceful})
}

func (ClientTracer) BufferChange(client, buffer string) {
	logging.Trace("client.buffer-change", map[string]interface{}{"client": client, "buffer": buffer})
}

func (ReloadTracer) Prompt(client, buffer string) {
	logging.Trace("reload.prompt", map[string]interface{}{"client": client, "buffer": buffer})
}

func (ReloadTracer) Resolved(buffer string, reloaded bool) {
	logging.Trace("reload.resolved", map[string]interface{}{"buffer": buffer, "reloaded": reloaded})
}

func (ReloadTracer) InvalidChoice(client, key string) {
	logging.Trace("reload.invalid-choice", map[string]interface{}{"client": client, "key": key})
}

func (OverlayTracer) MenuShow(client string, items int, inline bool) {
	logging.Trace("overlay.menu-show", map[string]interface{}{"client": client, "items": items, "inline": inline})
}

func (OverlayTracer) MenuSelect(client string, selected int) {
	logging.Trace("overlay.menu-select", map[string]interface{}{"client": client, "selected": selected})
}

func (OverlayTracer) MenuHide(client string) {
	logging.Trace("overlay.menu-hide", map[string]interface{}{"client": client})
}

func (OverlayTracer) InfoShow(client, title string, inline bool) {
	logging.Trace("overlay.info-show", map[string]interface{}{"client": client, "title": title, "inline": inline})
}

func (OverlayTracer) InfoHide(client string) {
	logging.Trace("overlay.info-hide", map[string]interface{}{"client": client})
}

func (HookTracer) Run(name, payload string) {
	logging.Trace("hook.run", map[string]interface{}{"name": name, "payload": payload})
}
