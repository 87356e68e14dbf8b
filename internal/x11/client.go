// Package x11 talks to the X server over the wire protocol. It
// implements both halves of the environment interface: the one-shot
// probes (idle time, input focus) and the lazy tree queries the
// walker drives. Probe and per-window failures degrade to safe
// defaults and a log line; only failing to open the display is fatal.
package x11

import (
	"log"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/screensaver"
	"github.com/jezek/xgb/xproto"
	"github.com/pkg/errors"

	"github.com/hartenfels/worktrackage/pkg/window"
)

// propertyMax is the GetProperty length in 32-bit units, 1 KiB of
// data. Window titles longer than that get truncated.
const propertyMax = 256

var atomNames = []string{
	"_NET_WM_NAME",
	"WM_NAME",
	"WM_CLASS",
	"UTF8_STRING",
}

// Client is a connection to one X display, alive for exactly one run.
type Client struct {
	conn     *xgb.Conn
	root     xproto.Window
	atoms    map[string]xproto.Atom
	hasSaver bool
}

var (
	_ window.Tree  = (*Client)(nil)
	_ window.Probe = (*Client)(nil)
)

// Connect opens the named display ("" means $DISPLAY) and interns the
// property atoms used during the walk.
func Connect(display string) (*Client, error) {
	conn, err := xgb.NewConnDisplay(display)
	if err != nil {
		if display == "" {
			return nil, errors.Wrap(err, "can't open default display")
		}
		return nil, errors.Wrapf(err, "can't open display %q", display)
	}

	c := &Client{
		conn:  conn,
		root:  xproto.Setup(conn).DefaultScreen(conn).Root,
		atoms: make(map[string]xproto.Atom, len(atomNames)),
	}

	for _, name := range atomNames {
		reply, err := xproto.InternAtom(conn, false, uint16(len(name)), name).Reply()
		if err != nil {
			conn.Close()
			return nil, errors.Wrapf(err, "can't intern atom %s", name)
		}
		c.atoms[name] = reply.Atom
	}

	if err := screensaver.Init(conn); err == nil {
		_, err := screensaver.QueryVersion(conn, 1, 0).Reply()
		c.hasSaver = err == nil
	}

	return c, nil
}

// Close releases the display connection.
func (c *Client) Close() {
	c.conn.Close()
}

// Root returns the display's root window.
func (c *Client) Root() window.ID {
	return window.ID(c.root)
}

// IdleTime returns milliseconds since the last user input via the
// MIT-SCREEN-SAVER extension, or 0 if the extension is missing or the
// query fails. Idle time is telemetry, never load-bearing.
func (c *Client) IdleTime() int64 {
	if !c.hasSaver {
		log.Print("can't get idle time: screen saver extension not supported")
		return 0
	}
	reply, err := screensaver.QueryInfo(c.conn, xproto.Drawable(c.root)).Reply()
	if err != nil {
		log.Printf("can't get idle time: %v", err)
		return 0
	}
	return int64(reply.MsSinceUserInput)
}

// FocusedWindow returns the current input-focus target, or
// window.None if the query fails.
func (c *Client) FocusedWindow() window.ID {
	reply, err := xproto.GetInputFocus(c.conn).Reply()
	if err != nil {
		log.Printf("can't get input focus: %v", err)
		return window.None
	}
	return window.ID(reply.Focus)
}

// Children returns the ordered children of win. A window destroyed
// mid-walk or otherwise unqueryable is reported as childless; the
// walk must not abort over one bad node.
func (c *Client) Children(win window.ID) []window.ID {
	reply, err := xproto.QueryTree(c.conn, xproto.Window(win)).Reply()
	if err != nil {
		log.Printf("can't get children of window %d: %v", win, err)
		return nil
	}
	children := make([]window.ID, len(reply.Children))
	for i, child := range reply.Children {
		children[i] = window.ID(child)
	}
	return children
}

// Properties fetches the class hint and title for win. Each field is
// independently optional; a property that cannot be read is nil.
func (c *Client) Properties(win window.ID) window.Props {
	props := window.Props{Title: c.title(xproto.Window(win))}
	props.Name, props.Class = parseClassHint(c.property(xproto.Window(win), c.atoms["WM_CLASS"], xproto.AtomString))
	return props
}

// title tries the EWMH UTF-8 title first and falls back to the legacy
// ICCCM one, the same order dwm uses.
func (c *Client) title(win xproto.Window) *string {
	if t := decodeText(c.property(win, c.atoms["_NET_WM_NAME"], c.atoms["UTF8_STRING"])); t != nil {
		return t
	}
	return decodeText(c.property(win, c.atoms["WM_NAME"], xproto.AtomString))
}

// property reads one property value, or nil if it is absent or the
// query fails.
func (c *Client) property(win xproto.Window, prop, typ xproto.Atom) []byte {
	reply, err := xproto.GetProperty(c.conn, false, win, prop, typ, 0, propertyMax).Reply()
	if err != nil || reply.Format == 0 {
		return nil
	}
	return reply.Value
}
