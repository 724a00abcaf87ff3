package types

type Framework string

const (
	FrameworkStatic  Framework = "static"
	FrameworkReact   Framework = "react"
	FrameworkNextJS  Framework = "nextjs"
	FrameworkVue     Framework = "vue"
	FrameworkAngular Framework = "angular"
)

var frameworks = []Framework{
	FrameworkStatic,
	FrameworkReact,
	FrameworkNextJS,
	FrameworkVue,
	FrameworkAngular,
}

func (x Framework) Valid() bool {
	for _, f := range frameworks {
		if f == x {
			return true
		}
	}
	return false
}

func (x Framework) String() string { return string(x) }
