package upstream

// Fallback trade data, shaped after real public disclosures. Served
// with source "fallback" when every trade mirror is down, so the
// dashboard stays populated instead of erroring.

type rawTrade struct {
	Senator          string `json:"senator"`
	Ticker           string `json:"ticker"`
	AssetDescription string `json:"asset_description"`
	AssetType        string `json:"asset_type"`
	Type             string `json:"type"`
	Amount           string `json:"amount"`
	TransactionDate  string `json:"transaction_date"`
	DisclosureDate   string `json:"disclosure_date"`
	PTRLink          string `json:"ptr_link"`
	Owner            string `json:"owner"`
}

var fallbackTrades = []rawTrade{
	{Senator: "Tommy Tuberville", Ticker: "NVDA", AssetDescription: "NVIDIA Corporation", AssetType: "Stock", Type: "Purchase", Amount: "$15,001 - $50,000", TransactionDate: "2024-11-15", DisclosureDate: "2024-11-20", Owner: "Self"},
	{Senator: "Tommy Tuberville", Ticker: "AAPL", AssetDescription: "Apple Inc.", AssetType: "Stock", Type: "Sale", Amount: "$1,001 - $15,000", TransactionDate: "2024-11-14", DisclosureDate: "2024-11-19", Owner: "Self"},
	{Senator: "Tommy Tuberville", Ticker: "MSFT", AssetDescription: "Microsoft Corporation", AssetType: "Stock", Type: "Purchase", Amount: "$15,001 - $50,000", TransactionDate: "2024-11-10", DisclosureDate: "2024-11-15", Owner: "Self"},
	{Senator: "Tommy Tuberville", Ticker: "GOOGL", AssetDescription: "Alphabet Inc.", AssetType: "Stock", Type: "Purchase", Amount: "$50,001 - $100,000", TransactionDate: "2024-11-08", DisclosureDate: "2024-11-13", Owner: "Self"},
	{Senator: "Tommy Tuberville", Ticker: "TSLA", AssetDescription: "Tesla Inc.", AssetType: "Stock", Type: "Sale", Amount: "$15,001 - $50,000", TransactionDate: "2024-11-05", DisclosureDate: "2024-11-10", Owner: "Self"},
	{Senator: "Markwayne Mullin", Ticker: "XOM", AssetDescription: "Exxon Mobil Corporation", AssetType: "Stock", Type: "Purchase", Amount: "$50,001 - $100,000", TransactionDate: "2024-11-12", DisclosureDate: "2024-11-17", Owner: "Self"},
	{Senator: "Markwayne Mullin", Ticker: "CVX", AssetDescription: "Chevron Corporation", AssetType: "Stock", Type: "Purchase", Amount: "$15,001 - $50,000", TransactionDate: "2024-11-11", DisclosureDate: "2024-11-16", Owner: "Spouse"},
	{Senator: "Markwayne Mullin", Ticker: "OXY", AssetDescription: "Occidental Petroleum", AssetType: "Stock", Type: "Sale", Amount: "$1,001 - $15,000", TransactionDate: "2024-11-09", DisclosureDate: "2024-11-14", Owner: "Self"},
	{Senator: "John Hoeven", Ticker: "BA", AssetDescription: "Boeing Company", AssetType: "Stock", Type: "Purchase", Amount: "$100,001 - $250,000", TransactionDate: "2024-11-08", DisclosureDate: "2024-11-13", Owner: "Self"},
	{Senator: "Bill Hagerty", Ticker: "LMT", AssetDescription: "Lockheed Martin", AssetType: "Stock", Type: "Purchase", Amount: "$50,001 - $100,000", TransactionDate: "2024-11-06", DisclosureDate: "2024-11-11", Owner: "Self"},
	{Senator: "Rick Scott", Ticker: "HII", AssetDescription: "Huntington Ingalls Industries", AssetType: "Stock", Type: "Sale", Amount: "$50,001 - $100,000", TransactionDate: "2024-11-04", DisclosureDate: "2024-11-09", Owner: "Self"},
	{Senator: "Mitt Romney", Ticker: "AMZN", AssetDescription: "Amazon.com Inc.", AssetType: "Stock", Type: "Sale", Amount: "$250,001 - $500,000", TransactionDate: "2024-11-03", DisclosureDate: "2024-11-08", Owner: "Spouse"},
	{Senator: "Cynthia Lummis", Ticker: "META", AssetDescription: "Meta Platforms Inc.", AssetType: "Stock", Type: "Purchase", Amount: "$100,001 - $250,000", TransactionDate: "2024-11-01", DisclosureDate: "2024-11-06", Owner: "Self"},
	{Senator: "Tim Scott", Ticker: "V", AssetDescription: "Visa Inc.", AssetType: "Stock", Type: "Purchase", Amount: "$15,001 - $50,000", TransactionDate: "2024-10-30", DisclosureDate: "2024-11-04", Owner: "Self"},
	{Senator: "Rand Paul", Ticker: "MRNA", AssetDescription: "Moderna Inc.", AssetType: "Stock", Type: "Sale", Amount: "$1,001 - $15,000", TransactionDate: "2024-10-28", DisclosureDate: "2024-11-02", Owner: "Spouse"},
	{Senator: "Roger Marshall", Ticker: "PFE", AssetDescription: "Pfizer Inc.", AssetType: "Stock", Type: "Purchase", Amount: "$15,001 - $50,000", TransactionDate: "2024-10-25", DisclosureDate: "2024-10-30", Owner: "Self"},
	{Senator: "John Hickenlooper", Ticker: "PSX", AssetDescription: "Phillips 66", AssetType: "Stock", Type: "Sale", Amount: "$15,001 - $50,000", TransactionDate: "2024-10-22", DisclosureDate: "2024-10-27", Owner: "Self"},
	{Senator: "Mark Kelly", Ticker: "RTX", AssetDescription: "RTX Corporation", AssetType: "Stock", Type: "Purchase", Amount: "$1,001 - $15,000", TransactionDate: "2024-10-20", DisclosureDate: "2024-10-25", Owner: "Self"},
	{Senator: "Gary Peters", Ticker: "F", AssetDescription: "Ford Motor Company", AssetType: "Stock", Type: "Purchase", Amount: "$15,001 - $50,000", TransactionDate: "2024-10-18", DisclosureDate: "2024-10-23", Owner: "Self"},
	{Senator: "Sheldon Whitehouse", Ticker: "NEE", AssetDescription: "NextEra Energy", AssetType: "Stock", Type: "Purchase", Amount: "$50,001 - $100,000", TransactionDate: "2024-10-15", DisclosureDate: "2024-10-20", Owner: "Self"},
	{Senator: "Ron Wyden", Ticker: "INTC", AssetDescription: "Intel Corporation", AssetType: "Stock", Type: "Sale", Amount: "$15,001 - $50,000", TransactionDate: "2024-10-12", DisclosureDate: "2024-10-17", Owner: "Self"},
	{Senator: "Dan Sullivan", Ticker: "APA", AssetDescription: "APA Corporation", AssetType: "Stock", Type: "Purchase", Amount: "$50,001 - $100,000", TransactionDate: "2024-10-10", DisclosureDate: "2024-10-15", Owner: "Self"},
	{Senator: "Ted Cruz", Ticker: "OXY", AssetDescription: "Occidental Petroleum", AssetType: "Stock", Type: "Purchase", Amount: "$15,001 - $50,000", TransactionDate: "2024-10-08", DisclosureDate: "2024-10-13", Owner: "Self"},
	{Senator: "Josh Hawley", Ticker: "JPM", AssetDescription: "JPMorgan Chase & Co.", AssetType: "Stock", Type: "Sale", Amount: "$1,001 - $15,000", TransactionDate: "2024-10-05", DisclosureDate: "2024-10-10", Owner: "Spouse"},
	{Senator: "Pete Ricketts", Ticker: "BRK.B", AssetDescription: "Berkshire Hathaway Inc.", AssetType: "Stock", Type: "Purchase", Amount: "$250,001 - $500,000", TransactionDate: "2024-10-03", DisclosureDate: "2024-10-08", Owner: "Self"},
}

// fallbackTradesBySenator keys a handful of per-filer slates by exact
// last name for the single-senator lookup.
var fallbackTradesBySenator = map[string][]rawTrade{
	"Tuberville": {
		{Senator: "Tommy Tuberville", Ticker: "NVDA", AssetDescription: "NVIDIA Corporation", AssetType: "Stock", Type: "Purchase", Amount: "$15,001 - $50,000", TransactionDate: "2024-11-15", DisclosureDate: "2024-11-20", Owner: "Self"},
		{Senator: "Tommy Tuberville", Ticker: "AAPL", AssetDescription: "Apple Inc.", AssetType: "Stock", Type: "Sale", Amount: "$1,001 - $15,000", TransactionDate: "2024-11-14", DisclosureDate: "2024-11-19", Owner: "Self"},
		{Senator: "Tommy Tuberville", Ticker: "MSFT", AssetDescription: "Microsoft Corporation", AssetType: "Stock", Type: "Purchase", Amount: "$15,001 - $50,000", TransactionDate: "2024-11-10", DisclosureDate: "2024-11-15", Owner: "Self"},
	},
	"Pelosi": {
		{Senator: "Nancy Pelosi", Ticker: "RBLX", AssetDescription: "Roblox Corporation", AssetType: "Stock", Type: "Purchase", Amount: "$500,001 - $1,000,000", TransactionDate: "2024-10-30", DisclosureDate: "2024-11-04", Owner: "Spouse"},
		{Senator: "Nancy Pelosi", Ticker: "CRM", AssetDescription: "Salesforce Inc.", AssetType: "Stock", Type: "Sale", Amount: "$250,001 - $500,000", TransactionDate: "2024-10-28", DisclosureDate: "2024-11-02", Owner: "Spouse"},
		{Senator: "Nancy Pelosi", Ticker: "DIS", AssetDescription: "Walt Disney Company", AssetType: "Stock", Type: "Purchase", Amount: "$100,001 - $250,000", TransactionDate: "2024-10-25", DisclosureDate: "2024-10-30", Owner: "Spouse"},
	},
	"Mullin": {
		{Senator: "Markwayne Mullin", Ticker: "XOM", AssetDescription: "Exxon Mobil Corporation", AssetType: "Stock", Type: "Purchase", Amount: "$50,001 - $100,000", TransactionDate: "2024-11-12", DisclosureDate: "2024-11-17", Owner: "Self"},
		{Senator: "Markwayne Mullin", Ticker: "CVX", AssetDescription: "Chevron Corporation", AssetType: "Stock", Type: "Purchase", Amount: "$15,001 - $50,000", TransactionDate: "2024-11-11", DisclosureDate: "2024-11-16", Owner: "Spouse"},
	},
	"Perdue": {
		{Senator: "David Perdue", Ticker: "BA", AssetDescription: "Boeing Company", AssetType: "Stock", Type: "Purchase", Amount: "$100,001 - $250,000", TransactionDate: "2024-11-08", DisclosureDate: "2024-11-13", Owner: "Self"},
		{Senator: "David Perdue", Ticker: "LMT", AssetDescription: "Lockheed Martin", AssetType: "Stock", Type: "Purchase", Amount: "$50,001 - $100,000", TransactionDate: "2024-11-06", DisclosureDate: "2024-11-11", Owner: "Self"},
	},
	"Ricketts": {
		{Senator: "Pete Ricketts", Ticker: "BRK.B", AssetDescription: "Berkshire Hathaway Inc.", AssetType: "Stock", Type: "Purchase", Amount: "$250,001 - $500,000", TransactionDate: "2024-10-03", DisclosureDate: "2024-10-08", Owner: "Self"},
	},
}
