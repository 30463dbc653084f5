package domain

// BroadcastFile represents a Foundry broadcast file (run-latest.json)
type BroadcastFile struct {
	Chain        uint64                 `json:"chain"`
	Transactions []BroadcastTransaction `json:"transactions"`
	Receipts     []BroadcastReceipt     `json:"receipts"`
	Timestamp    uint64                 `json:"timestamp"`
	Commit       string                 `json:"commit"`
}

// BroadcastTransaction represents a transaction in a broadcast file
type BroadcastTransaction struct {
	Hash            string `json:"hash"`
	TransactionType string `json:"transactionType"`
	ContractName    string `json:"contractName"`
	ContractAddress string `json:"contractAddress"`
	Function        string `json:"function"`
}

// BroadcastReceipt represents a receipt in a broadcast file. Numeric fields
// are hex encoded.
type BroadcastReceipt struct {
	TransactionHash   string `json:"transactionHash"`
	BlockNumber       string `json:"blockNumber"`
	GasUsed           string `json:"gasUsed"`
	CumulativeGasUsed string `json:"cumulativeGasUsed"`
	EffectiveGasPrice string `json:"effectiveGasPrice"`
	Status            string `json:"status"`
	ContractAddress   string `json:"contractAddress"`
}

// FirstCreation returns the contract address of the first transaction that
// declares the given contract name. Later transactions with the same name are
// ignored.
func (b *BroadcastFile) FirstCreation(contractName string) (string, bool) {
	for _, tx := range b.Transactions {
		if tx.ContractName == contractName && tx.ContractAddress != "" {
			return tx.ContractAddress, true
		}
	}
	return "", false
}

// LastReceipt returns the final receipt of the run.
func (b *BroadcastFile) LastReceipt() (BroadcastReceipt, bool) {
	if len(b.Receipts) == 0 {
		return BroadcastReceipt{}, false
	}
	return b.Receipts[len(b.Receipts)-1], true
}
