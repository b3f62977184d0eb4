package embedder

// Message is something the engine reports to the host.
type Message interface {
	isMessage()
}

// Envelope pairs a message with the browsing context it came from.
// Browser is NoBrowser when the message has no context.
type Envelope struct {
	Browser BrowserID
	Message Message
}

// AllowNavigationRequest asks whether a pipeline may load URL.
type AllowNavigationRequest struct {
	Pipeline PipelineID
	URL      string
}

type ChangePageTitle struct {
	Title string
}

type LoadStart struct{}

type LoadComplete struct{}

type Status struct {
	Text string
}

type SetClipboardContents struct {
	Text string
}

type GetClipboardContents struct{}

type Alert struct {
	Text string
}

type SelectFiles struct {
	Filters  []string
	Multiple bool
}

// Shutdown is sent once the engine has finished shutting down after Quit.
type Shutdown struct{}

func (AllowNavigationRequest) isMessage() {}
func (ChangePageTitle) isMessage()        {}
func (LoadStart) isMessage()              {}
func (LoadComplete) isMessage()           {}
func (Status) isMessage()                 {}
func (SetClipboardContents) isMessage()   {}
func (GetClipboardContents) isMessage()   {}
func (Alert) isMessage()                  {}
func (SelectFiles) isMessage()            {}
func (Shutdown) isMessage()               {}
