package domain

// ContractSpec describes a contract the deploy script is expected to create
type ContractSpec struct {
	Name string
	// ConstructorAddressOf names another contract of the same run whose
	// address is the single constructor argument. Empty when the
	// constructor takes no arguments.
	ConstructorAddressOf string
}

// DeploymentPlan lists the contracts of a run in verification order
type DeploymentPlan struct {
	Contracts []ContractSpec
}

// Names returns the contract names of the plan in order
func (p DeploymentPlan) Names() []string {
	names := make([]string, 0, len(p.Contracts))
	for _, c := range p.Contracts {
		names = append(names, c.Name)
	}
	return names
}

// WrappedPocketPlan is the plan of scripts/Deploy.s.sol: the token first,
// then the mint controller which takes the token address.
var WrappedPocketPlan = DeploymentPlan{
	Contracts: []ContractSpec{
		{Name: "WrappedPocket"},
		{Name: "MintController", ConstructorAddressOf: "WrappedPocket"},
	},
}
