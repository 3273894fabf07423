package driver

var IndexQueries = []string{
	"CREATE INDEX ON :Network(uuid);",
	"CREATE INDEX ON :Network(structure_id);",
	"CREATE INDEX ON :Residue(network_uuid);",
}

const (
	SaveNetworkQuery = `
		MERGE (n:Network {uuid: $uuid})
		SET n.structure_id = $structure_id,
			n.chain = $chain,
			n.cutoff = $cutoff,
			n.atom = $atom,
			n.residue_no_diff = $residue_no_diff,
			n.edge_count = $edge_count,
			n.created_at = $created_at
		RETURN n.uuid AS uuid
	`

	SaveResiduesQuery = `
		MATCH (n:Network {uuid: $uuid})
		UNWIND $residues AS number
		MERGE (r:Residue {network_uuid: $uuid, number: number})
		MERGE (n)-[:HAS_RESIDUE]->(r)
	`

	SaveContactsQuery = `
		UNWIND $edges AS edge
		MATCH (a:Residue {network_uuid: $uuid, number: edge[0]})
		MATCH (b:Residue {network_uuid: $uuid, number: edge[1]})
		MERGE (a)-[:CONTACT]->(b)
	`

	GetNetworkQuery = `
		MATCH (n:Network {uuid: $uuid})
		RETURN n.uuid AS uuid,
			n.structure_id AS structure_id,
			n.chain AS chain,
			n.cutoff AS cutoff,
			n.atom AS atom,
			n.residue_no_diff AS residue_no_diff,
			n.created_at AS created_at
	`

	GetContactsQuery = `
		MATCH (a:Residue {network_uuid: $uuid})-[:CONTACT]->(b:Residue {network_uuid: $uuid})
		RETURN a.number AS a, b.number AS b
		ORDER BY a, b
	`

	DeleteNetworkQuery = `
		MATCH (n:Network {uuid: $uuid})
		OPTIONAL MATCH (r:Residue {network_uuid: $uuid})
		DETACH DELETE r, n
	`
)
