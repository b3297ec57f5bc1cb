package component

type AgentTag struct{}

var AgentTagComponent = NewComponent[AgentTag]()

type TargetTag struct{}

var TargetTagComponent = NewComponent[TargetTag]()
