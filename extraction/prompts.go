package extraction

const portfolioPrompt = `
Analyze this portfolio or account statement image and extract financial assets with EXACT precision.

CRITICAL: Extract ONLY the exact values shown in the image. Do NOT modify, estimate, or correct any numbers. Be as PRECISE as possible. Be thorough.

EXTRACTION RULES:
- Copy numbers EXACTLY as they appear in the image
- Do not round, estimate, or "fix" any values
- If a price shows as 150.25, use 150.25 (not 150.26 or 150.24)
- If shares show as 10.5, use 10.5 (not 10 or 11)
- If balance shows as 5000.00, use 5000.00 (not 5000 or 5000.01)

For each asset found, extract:
- Asset name/company name (exactly as shown in image)
- Ticker symbol (exactly as shown, if visible)
- Number of shares/units (exact number from image)
- Current price per share (exact dollar amount from image)
- Account balance (exact dollar amount from image)
- Interest rate/APY (exact percentage from image, converted to decimal; if none is shown, use 0.00)

Determine asset type:
- isStock: true if it has a ticker symbol and shares (stocks, ETFs, mutual funds)
- isStock: false if it's cash, savings, checking, CD, or money market

Return the data as a JSON array with this structure:
[
  {
    "name": "Company Name",
    "isStock": true/false,
    "ticker": "SYMBOL" (only for stocks, exactly as shown),
    "shares": 123.45 (only for stocks, exact number from image),
    "currentPrice": 150.25 (only for stocks, exact price from image),
    "balance": 5000.00 (only for cash accounts, exact balance from image),
    "apy": 0.045 (only for cash accounts, exact rate from image as decimal)
  }
]

IMPORTANT: Only extract what you can see clearly in the image. If you're unsure about any value, omit that asset entirely.
Only return valid JSON, no other text or explanations.
`

const tradesPrompt = `
Analyze this trade history or trade confirmation image and extract realized trades with EXACT precision.

CRITICAL: Extract ONLY the exact values shown in the image. Do NOT modify, estimate, or correct any numbers.

For each closed trade found, extract:
- Trade date, normalized to YYYY-MM-DD
- Ticker symbol in uppercase (for options, the full option description as shown)
- Realized profit or loss in dollars (negative for losses)
- Percent gain or loss (negative for losses)

Return the data as a JSON array with this structure:
[
  {
    "date": "2024-01-15",
    "ticker": "AAPL",
    "realized_pnl": 125.50,
    "percent_diff": 5.13
  }
]

IMPORTANT: Only extract trades that are clearly closed/realized. Skip open positions. If you're unsure about any value, omit that trade entirely.
Only return valid JSON, no other text or explanations.
`
