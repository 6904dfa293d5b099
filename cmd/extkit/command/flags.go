package command

const (
	manifestFlag = "manifest"
	callerFlag   = "caller"
)
