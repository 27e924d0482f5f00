package subgraph

// DefaultEndpoint is the hosted Uniswap V3 subgraph.
const DefaultEndpoint = "https://api.thegraph.com/subgraphs/name/uniswap/uniswap-v3"

// dashboardQuery loads every list in one round trip. No pagination
// arguments are sent; paging happens over the returned slices.
const dashboardQuery = `
query data {
  pools(orderBy: totalValueLockedUSD, orderDirection: desc) {
    id
    totalValueLockedUSD
    volumeUSD
  }
  tokens(orderBy: totalValueLocked, orderDirection: desc) {
    id
    symbol
    totalValueLocked
    volumeUSD
  }
  swaps(orderBy: timestamp, orderDirection: desc) {
    id
    amountUSD
    timestamp
    sender
  }
}
`
