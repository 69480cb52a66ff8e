package blockchain

// SupplyChainABI is the ABI of the supply-chain traceability contract.
const SupplyChainABI = `[{"inputs":[],"name":"superOwner","outputs":[{"internalType":"address","name":"","type":"address"}],"stateMutability":"view","type":"function"},{"inputs":[],"name":"owner","outputs":[{"internalType":"address","name":"","type":"address"}],"stateMutability":"view","type":"function"},{"inputs":[{"internalType":"address","name":"contributor","type":"address"}],"name":"getContributorInfo","outputs":[{"internalType":"string","name":"name","type":"string"},{"internalType":"uint256","name":"credits","type":"uint256"},{"internalType":"bool","name":"active","type":"bool"}],"stateMutability":"view","type":"function"},{"inputs":[{"internalType":"address","name":"contributor","type":"address"}],"name":"getBatchesByContributor","outputs":[{"internalType":"uint256[]","name":"","type":"uint256[]"}],"stateMutability":"view","type":"function"},{"inputs":[{"internalType":"uint256","name":"batchId","type":"uint256"}],"name":"getBatchInfo","outputs":[{"internalType":"uint256","name":"batchId","type":"uint256"},{"internalType":"address","name":"contributor","type":"address"},{"internalType":"string","name":"contributorName","type":"string"},{"internalType":"string","name":"name","type":"string"},{"internalType":"string","name":"description","type":"string"},{"internalType":"string","name":"date","type":"string"},{"internalType":"string","name":"location","type":"string"},{"internalType":"string","name":"imageHash","type":"string"},{"internalType":"bool","name":"isClosed","type":"bool"}],"stateMutability":"view","type":"function"},{"inputs":[{"internalType":"address","name":"contributor","type":"address"},{"internalType":"string","name":"name","type":"string"}],"name":"addContributor","outputs":[],"stateMutability":"nonpayable","type":"function"},{"inputs":[{"internalType":"address","name":"contributor","type":"address"}],"name":"deactivateContributor","outputs":[],"stateMutability":"nonpayable","type":"function"},{"inputs":[{"internalType":"address","name":"contributor","type":"address"},{"internalType":"uint256","name":"credits","type":"uint256"}],"name":"setContributorCredits","outputs":[],"stateMutability":"nonpayable","type":"function"},{"inputs":[{"internalType":"string","name":"name","type":"string"},{"internalType":"string","name":"description","type":"string"},{"internalType":"string","name":"date","type":"string"},{"internalType":"string","name":"location","type":"string"},{"internalType":"string","name":"imageHash","type":"string"}],"name":"initializeBatch","outputs":[],"stateMutability":"nonpayable","type":"function"}]`

// getBatchInfo tuple positions. The contract returns a fixed 9-field
// tuple; the projection below must match the return order exactly.
const (
	batchFieldID = iota
	batchFieldOwner
	batchFieldContributorName
	batchFieldName
	batchFieldDescription
	batchFieldDate
	batchFieldLocation
	batchFieldImageHash
	batchFieldIsClosed
)
